package console

import (
	"context"
	"strings"

	createRes "github.com/m04kA/UAD-ReservationClient/internal/controller/create_reservation"
	lookupRes "github.com/m04kA/UAD-ReservationClient/internal/controller/reservation_lookup"
)

func (c *Console) listRestaurants(ctx context.Context) {
	restaurants, err := c.client.ListRestaurants(ctx)
	if err != nil {
		c.printf("Failed to fetch restaurants: %v\n", err)
		return
	}
	c.printRestaurants(restaurants)
}

func (c *Console) searchRestaurants(ctx context.Context) {
	cuisine, ok := c.prompt("Cuisine type: ")
	if !ok {
		return
	}

	restaurants, err := c.client.SearchRestaurants(ctx, strings.TrimSpace(cuisine))
	if err != nil {
		c.printf("Failed to search restaurants: %v\n", err)
		return
	}
	c.printRestaurants(restaurants)
}

func (c *Console) showMeals(ctx context.Context) {
	id, ok := c.promptInt("Restaurant ID: ")
	if !ok {
		return
	}
	date, ok := c.promptDate("Date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	meals, err := c.client.MealsForDate(ctx, id, date)
	if err != nil {
		c.printf("Failed to fetch meals: %v\n", err)
		return
	}
	if len(meals) == 0 {
		c.printf("No meals scheduled for that date\n")
		return
	}
	for _, m := range meals {
		c.printf("  %-7s %-30s %.2f EUR\n", m.MealType, m.Name, m.Price)
	}
}

func (c *Console) showWeather(ctx context.Context) {
	location, ok := c.prompt("Location: ")
	if !ok {
		return
	}
	date, ok := c.promptDate("Date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	forecast, err := c.client.WeatherForecast(ctx, strings.TrimSpace(location), date)
	if err != nil {
		c.printf("Failed to fetch forecast: %v\n", err)
		return
	}
	c.printf("  %s on %s: %s, %.0f C, humidity %d%%\n",
		forecast.Location, forecast.Date, forecast.Description,
		forecast.TemperatureC, forecast.Humidity)
}

// makeReservation ведет пользователя по форме создания бронирования.
// Контекст ресторана и даты фиксируется до открытия формы, как и в
// каталоге: форма открывается для конкретного ресторана и даты.
func (c *Console) makeReservation(ctx context.Context) {
	restaurants, err := c.client.ListRestaurants(ctx)
	if err != nil {
		c.printf("Failed to fetch restaurants: %v\n", err)
		return
	}
	c.printRestaurants(restaurants)

	id, ok := c.promptInt("Restaurant ID: ")
	if !ok {
		return
	}
	var name string
	for _, r := range restaurants {
		if r.ID == id {
			name = r.Name
		}
	}
	if name == "" {
		c.printf("Unknown restaurant\n")
		return
	}

	date, ok := c.promptDate("Reservation date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	ctrl := createRes.NewController(c.client, c.log, id, name, date)
	defer ctrl.Close()

	for {
		userName, ok := c.prompt("Your name: ")
		if !ok {
			return
		}
		userEmail, ok := c.prompt("Your email: ")
		if !ok {
			return
		}
		userPhone, ok := c.prompt("Your phone: ")
		if !ok {
			return
		}

		ctrl.Edit(createRes.FormFields{
			UserName:  strings.TrimSpace(userName),
			UserEmail: strings.TrimSpace(userEmail),
			UserPhone: strings.TrimSpace(userPhone),
		})
		state := ctrl.Submit(ctx)

		switch state.Phase {
		case createRes.PhaseSucceeded:
			c.printf("\nReservation successful!\n")
			c.printf("Your reservation token: %s\n", state.Token)
			c.printf("Keep this token to check or cancel your reservation later.\n")
			return
		case createRes.PhaseErrored:
			c.printf("%s\n", state.Message)
			retry, ok := c.prompt("Try again? (y/n): ")
			if !ok || !strings.EqualFold(strings.TrimSpace(retry), "y") {
				return
			}
		default:
			return
		}
	}
}

// checkReservation просмотр и отмена бронирования по токену
func (c *Console) checkReservation(ctx context.Context) {
	token, ok := c.prompt("Reservation token: ")
	if !ok {
		return
	}

	ctrl := lookupRes.NewController(c.client, c.log)
	defer ctrl.Close()

	state := ctrl.Lookup(ctx, token)
	if state.Phase != lookupRes.PhaseLoaded {
		c.printf("%s\n", state.Message)
		return
	}

	c.printf("\nReservation details:\n")
	c.printReservation(state.Reservation, ctrl.RestaurantName())

	if !state.CanCancel() {
		return
	}

	answer, ok := c.prompt("Cancel this reservation? (y/n): ")
	if !ok || !strings.EqualFold(strings.TrimSpace(answer), "y") {
		return
	}

	ctrl.RequestCancel()
	confirm, ok := c.prompt("Are you sure you want to cancel this reservation? (y/n): ")
	if !ok || !strings.EqualFold(strings.TrimSpace(confirm), "y") {
		ctrl.AbortCancel()
		c.printf("Reservation kept\n")
		return
	}

	state = ctrl.ConfirmCancel(ctx)
	c.printf("%s\n", state.Message)
}
