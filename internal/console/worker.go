package console

import (
	"context"
	"strings"

	"github.com/m04kA/UAD-ReservationClient/internal/controller/worker_panel"
)

// workerMode открывает панель работника после локальной проверки пароля.
// Проверка — грубый барьер на стороне клиента; изменяющие endpoints
// обязан авторизовывать сам backend.
func (c *Console) workerMode(ctx context.Context) {
	password, ok := c.prompt("Enter staff password: ")
	if !ok {
		return
	}

	access := worker_panel.NewAccess(c.workerSecret)
	if !access.Login(password) {
		c.printf("Incorrect password. Please try again.\n")
		return
	}

	ctrl := worker_panel.NewController(c.client, c.log, access)
	defer ctrl.Close()
	defer access.Logout()

	ctrl.LoadRestaurants(ctx)

	for {
		c.printf("\n--- Worker Panel ---\n")
		c.printf("1) Search by token\n")
		c.printf("2) Search by restaurant and date\n")
		c.printf("3) Mark a reservation as completed\n")
		c.printf("0) Exit worker mode\n")

		choice, ok := c.prompt("Select an option: ")
		if !ok {
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.workerSearchByToken(ctx, ctrl)
		case "2":
			c.workerSearchByRestaurantAndDate(ctx, ctrl)
		case "3":
			c.workerMarkCompleted(ctx, ctrl)
		case "0":
			return
		default:
			c.printf("Unknown option\n")
		}
	}
}

func (c *Console) workerSearchByToken(ctx context.Context, ctrl *worker_panel.Controller) {
	token, ok := c.prompt("Reservation token: ")
	if !ok {
		return
	}

	state := ctrl.SearchByToken(ctx, token)
	c.renderWorkerState(state)
}

func (c *Console) workerSearchByRestaurantAndDate(ctx context.Context, ctrl *worker_panel.Controller) {
	ctrl.SelectMode(worker_panel.ModeRestaurantAndDate)
	c.printRestaurants(ctrl.State().Restaurants)

	id, ok := c.promptInt("Restaurant ID: ")
	if !ok {
		return
	}
	date, ok := c.promptDate("Date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	state := ctrl.SearchByRestaurantAndDate(ctx, id, date)
	c.renderWorkerState(state)
}

func (c *Console) workerMarkCompleted(ctx context.Context, ctrl *worker_panel.Controller) {
	if len(ctrl.State().Reservations) == 0 {
		c.printf("Run a search first\n")
		return
	}

	token, ok := c.prompt("Token of the reservation to complete: ")
	if !ok {
		return
	}

	state := ctrl.MarkCompleted(ctx, strings.TrimSpace(token))
	c.renderWorkerState(state)
}

func (c *Console) renderWorkerState(state worker_panel.State) {
	if state.Message != "" {
		c.printf("%s\n", state.Message)
	}
	for i := range state.Reservations {
		r := &state.Reservations[i]
		c.printf("\n#%d [%s]\n", r.ID, r.Status)
		c.printf("  Name:  %s\n", r.UserName)
		c.printf("  Email: %s\n", r.UserEmail)
		c.printf("  Phone: %s\n", r.UserPhone)
		c.printf("  Date:  %s\n", r.ReservationDate.Format("Monday, January 2, 2006 15:04"))
		c.printf("  Token: %s\n", r.Token)
	}
}
