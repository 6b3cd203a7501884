package model

// Property is a rental listing. CostPerNight is stored as an integer amount
// (cents in the seed data) and compared as-is by the price filters.
type Property struct {
	ID                int64  `json:"id"`
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	ParkingSpaces     int32  `json:"parking_spaces"`
	NumberOfBathrooms int32  `json:"number_of_bathrooms"`
	NumberOfBedrooms  int32  `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Active            bool   `json:"active"`
}

// RatedProperty is a search result: a property plus the average of its review ratings.
type RatedProperty struct {
	Property
	AverageRating float64 `json:"average_rating"`
}
