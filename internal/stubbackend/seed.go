package stubbackend

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/m04kA/UAD-ReservationClient/internal/domain"
)

// seedRestaurants предзаполненный каталог кампусных ресторанов
var seedRestaurants = []domain.Restaurant{
	{ID: 1, Name: "Santiago Grill", Location: "Campus de Santiago", ContactInfo: "+351 234 370 200", CuisineType: "Portuguese", Description: "Grilled fish and meat, daily specials"},
	{ID: 2, Name: "Cantina Central", Location: "Central Campus", ContactInfo: "+351 234 370 201", CuisineType: "Traditional", Description: "Classic canteen menu with soup and dessert"},
	{ID: 3, Name: "Green Bowl", Location: "North Campus", ContactInfo: "+351 234 370 202", CuisineType: "Vegetarian", Description: "Salads, bowls and vegetarian plates"},
	{ID: 4, Name: "Pasta Corner", Location: "Engineering Building", ContactInfo: "+351 234 370 203", CuisineType: "Italian", Description: "Fresh pasta and pizza by the slice"},
	{ID: 5, Name: "Ria Sushi", Location: "Riverside Campus", ContactInfo: "+351 234 370 204", CuisineType: "Japanese", Description: "Sushi and warm rice bowls"},
}

// mealTemplates шаблоны меню по типу приема пищи
var mealTemplates = []struct {
	mealType string
	name     string
	price    float64
}{
	{"LUNCH", "Soup of the day", 1.20},
	{"LUNCH", "Grilled dish of the day", 4.50},
	{"LUNCH", "Vegetarian plate", 4.10},
	{"DINNER", "Dinner special", 5.20},
}

// mealsFor генерирует детерминированное меню ресторана на дату.
// Меню не хранится: заглушке достаточно стабильного ответа для
// одинаковых запросов.
func mealsFor(restaurantID int64, date time.Time) []domain.Meal {
	day := date.Format(domain.DateFormat)
	out := make([]domain.Meal, 0, len(mealTemplates))
	for i, t := range mealTemplates {
		out = append(out, domain.Meal{
			ID:           restaurantID*100 + int64(i) + 1,
			RestaurantID: restaurantID,
			Name:         t.name,
			Description:  fmt.Sprintf("%s (%s)", t.name, day),
			MealType:     t.mealType,
			Price:        t.price,
			Date:         day,
		})
	}
	return out
}

var forecastDescriptions = []string{"Sunny", "Partly cloudy", "Cloudy", "Light rain", "Windy"}

// forecastFor генерирует детерминированный прогноз для локации и даты
func forecastFor(location string, date time.Time) domain.Forecast {
	h := fnv.New32a()
	_, _ = h.Write([]byte(location + date.Format(domain.DateFormat)))
	seed := h.Sum32()

	return domain.Forecast{
		Location:      location,
		Date:          date.Format(domain.DateFormat),
		Description:   forecastDescriptions[seed%uint32(len(forecastDescriptions))],
		TemperatureC:  10 + float64(seed%15),
		Humidity:      40 + int(seed%50),
		Precipitation: float64(seed%40) / 10,
	}
}
