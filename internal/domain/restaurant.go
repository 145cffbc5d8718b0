package domain

// Restaurant represents a campus restaurant. Read-only from the client's
// perspective: records are owned by the backend and fetched to decorate
// reservation views.
type Restaurant struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	ContactInfo string `json:"contactInfo"`
	CuisineType string `json:"cuisineType"`
	Description string `json:"description"`
}

// Meal represents a menu entry served by a restaurant on a given date
type Meal struct {
	ID           int64   `json:"id"`
	RestaurantID int64   `json:"restaurantId"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	MealType     string  `json:"mealType"`
	Price        float64 `json:"price"`
	Date         string  `json:"date"` // YYYY-MM-DD
}
