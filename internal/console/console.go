package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/UAD-ReservationClient/internal/domain"
	"github.com/m04kA/UAD-ReservationClient/internal/integrations/diningservice"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Console интерактивная терминальная оболочка: клиентское меню и режим
// работника. Оболочка не содержит бизнес-логики — состоянием владеют
// контроллеры, оболочка только рендерит его и транслирует ввод.
type Console struct {
	client       *diningservice.Client
	log          Logger
	workerSecret string

	in  *bufio.Scanner
	out io.Writer
}

// New создает консоль поверх указанных потоков ввода/вывода
func New(client *diningservice.Client, log Logger, workerSecret string, in io.Reader, out io.Writer) *Console {
	return &Console{
		client:       client,
		log:          log,
		workerSecret: workerSecret,
		in:           bufio.NewScanner(in),
		out:          out,
	}
}

// Run запускает главный цикл меню. Возвращается при выборе выхода
// или исчерпании ввода.
func (c *Console) Run(ctx context.Context) {
	for {
		c.printf("\n=== UA Campus Dining ===\n")
		c.printf("1) List restaurants\n")
		c.printf("2) Search restaurants by cuisine\n")
		c.printf("3) Meals for a date\n")
		c.printf("4) Weather forecast\n")
		c.printf("5) Make a reservation\n")
		c.printf("6) Check or cancel my reservation\n")
		c.printf("7) Worker mode\n")
		c.printf("0) Exit\n")

		choice, ok := c.prompt("Select an option: ")
		if !ok {
			return
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.listRestaurants(ctx)
		case "2":
			c.searchRestaurants(ctx)
		case "3":
			c.showMeals(ctx)
		case "4":
			c.showWeather(ctx)
		case "5":
			c.makeReservation(ctx)
		case "6":
			c.checkReservation(ctx)
		case "7":
			c.workerMode(ctx)
		case "0":
			return
		default:
			c.printf("Unknown option\n")
		}
	}
}

func (c *Console) printf(format string, v ...interface{}) {
	fmt.Fprintf(c.out, format, v...)
}

// prompt выводит приглашение и читает строку; второй результат false
// означает исчерпание ввода
func (c *Console) prompt(label string) (string, bool) {
	c.printf("%s", label)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) promptInt(label string) (int64, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		c.printf("Invalid number\n")
		return 0, false
	}
	return n, true
}

func (c *Console) promptDate(label string) (time.Time, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return time.Time{}, false
	}
	date, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(raw), time.Local)
	if err != nil {
		c.printf("Invalid date, expected YYYY-MM-DD\n")
		return time.Time{}, false
	}
	return date, true
}

func (c *Console) printRestaurants(restaurants []domain.Restaurant) {
	if len(restaurants) == 0 {
		c.printf("No restaurants found\n")
		return
	}
	for _, r := range restaurants {
		c.printf("  [%d] %s — %s (%s)\n", r.ID, r.Name, r.Location, r.CuisineType)
	}
}

func (c *Console) printReservation(r *domain.Reservation, restaurantName string) {
	c.printf("  Status:     %s\n", r.Status)
	c.printf("  Restaurant: %s\n", restaurantName)
	c.printf("  Date:       %s\n", r.ReservationDate.Format("Monday, January 2, 2006"))
	c.printf("  Name:       %s\n", r.UserName)
	c.printf("  Email:      %s\n", r.UserEmail)
	c.printf("  Phone:      %s\n", r.UserPhone)
	c.printf("  Token:      %s\n", r.Token)
}
