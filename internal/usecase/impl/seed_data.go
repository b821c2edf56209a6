package impl

import (
	"localguide/internal/domain/entity"
)

type seedReview struct {
	entityType entity.EntityType
	entityID   string
	rating     int
	comment    string
}

type seedCatalog struct {
	spots     []*entity.Spot
	landmarks []*entity.Landmark
	images    []*entity.Image
	reviews   []seedReview
}

// reviewsFor attributes the sample reviews to the given users round-robin.
func (c seedCatalog) reviewsFor(users []*entity.User) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(c.reviews))
	for i, r := range c.reviews {
		reviews = append(reviews, &entity.Review{
			UserID:     users[i%len(users)].ID,
			EntityType: r.entityType,
			EntityID:   r.entityID,
			Rating:     r.rating,
			Comment:    r.comment,
		})
	}

	return reviews
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}

func sampleCatalog() seedCatalog {
	return seedCatalog{
		spots: []*entity.Spot{
			{
				PlaceInfo: entity.PlaceInfo{
					ID:               "harbor-noodle-bar",
					Name:             "Harbor Noodle Bar",
					Category:         "restaurant",
					Description:      "Hand-pulled noodles in a broth simmered overnight, served at a long counter facing the open kitchen.",
					ShortDescription: "Hand-pulled noodles by the water",
					Location:         "Old Harbor",
					Address:          "12 Quay Street",
					Hours:            strPtr(`{"mon-fri":"11:00-22:00","sat-sun":"12:00-23:00"}`),
					Phone:            strPtr("+1 555 0101"),
					Image:            "/usercontent/images/spots/harbor-noodle-bar.jpg",
					Latitude:         floatPtr(40.70281),
					Longitude:        floatPtr(-74.01289),
					Rating:           4.6,
				},
				PriceRange: "$$",
			},
			{
				PlaceInfo: entity.PlaceInfo{
					ID:               "lantern-coffee",
					Name:             "Lantern Coffee",
					Category:         "cafe",
					Description:      "Small-batch roaster with a sunny back garden and a rotating pastry menu.",
					ShortDescription: "Roastery with a garden",
					Location:         "Market District",
					Address:          "48 Lantern Lane",
					Hours:            strPtr(`{"daily":"07:00-18:00"}`),
					Website:          strPtr("https://lantern.example.com"),
					Image:            "/usercontent/images/spots/lantern-coffee.jpg",
					Latitude:         floatPtr(40.71012),
					Longitude:        floatPtr(-74.00641),
					Rating:           4.4,
				},
				PriceRange: "$",
			},
			{
				PlaceInfo: entity.PlaceInfo{
					ID:               "north-gate-market",
					Name:             "North Gate Market",
					Category:         "shopping",
					Description:      "Covered market with produce stalls, spice merchants and street food vendors.",
					ShortDescription: "Covered food and craft market",
					Location:         "North Gate",
					Address:          "1 Market Square",
					Image:            "/usercontent/images/spots/north-gate-market.jpg",
					Latitude:         floatPtr(40.72035),
					Longitude:        floatPtr(-73.99887),
					Rating:           4.2,
				},
				PriceRange: "$",
			},
		},
		landmarks: []*entity.Landmark{
			{
				PlaceInfo: entity.PlaceInfo{
					ID:               "old-lighthouse",
					Name:             "Old Lighthouse",
					Category:         "historic",
					Description:      "A restored stone lighthouse with a spiral staircase and a viewing gallery over the bay.",
					ShortDescription: "Restored 19th century lighthouse",
					Location:         "Old Harbor",
					Address:          "Lighthouse Point",
					Hours:            strPtr(`{"tue-sun":"09:00-17:00"}`),
					Image:            "/usercontent/images/landmarks/old-lighthouse.jpg",
					Latitude:         floatPtr(40.69892),
					Longitude:        floatPtr(-74.01968),
					Rating:           4.8,
				},
				History:      "Lit in 1856 to guide ships past the shoals, decommissioned in 1962 and reopened as a museum in 1998.",
				AdmissionFee: "$5",
			},
			{
				PlaceInfo: entity.PlaceInfo{
					ID:               "city-botanical-garden",
					Name:             "City Botanical Garden",
					Category:         "park",
					Description:      "Glasshouses, a rose walk and a koi pond spread across twelve acres.",
					ShortDescription: "Twelve acres of gardens",
					Location:         "Riverside",
					Address:          "200 Garden Avenue",
					Hours:            strPtr(`{"daily":"08:00-19:00"}`),
					Website:          strPtr("https://garden.example.com"),
					Image:            "/usercontent/images/landmarks/botanical-garden.jpg",
					Latitude:         floatPtr(40.73061),
					Longitude:        floatPtr(-73.99124),
					Rating:           4.7,
				},
				History:      "Founded in 1891 on the grounds of a former nursery.",
				AdmissionFee: "Free",
			},
			{
				PlaceInfo: entity.PlaceInfo{
					ID:               "clock-tower",
					Name:             "Clock Tower",
					Category:         "historic",
					Description:      "The town's tallest brick building, with a carillon that plays at noon.",
					ShortDescription: "Brick tower with a noon carillon",
					Location:         "Town Center",
					Address:          "Civic Plaza",
					Image:            "/usercontent/images/landmarks/clock-tower.jpg",
					Latitude:         floatPtr(40.71427),
					Longitude:        floatPtr(-74.00597),
					Rating:           4.3,
				},
				History:      "Completed in 1902 after the old town hall burned down.",
				AdmissionFee: "Free",
			},
		},
		images: []*entity.Image{
			{EntityType: entity.EntityTypeSpot, EntityID: "harbor-noodle-bar", URL: "/usercontent/images/spots/harbor-noodle-bar.jpg", IsPrimary: true},
			{EntityType: entity.EntityTypeSpot, EntityID: "harbor-noodle-bar", URL: "/usercontent/images/spots/harbor-noodle-bar-counter.jpg", OrderIndex: 1},
			{EntityType: entity.EntityTypeSpot, EntityID: "harbor-noodle-bar", URL: "/usercontent/images/spots/harbor-noodle-bar-bowl.jpg", OrderIndex: 2},
			{EntityType: entity.EntityTypeSpot, EntityID: "lantern-coffee", URL: "/usercontent/images/spots/lantern-coffee-garden.jpg", OrderIndex: 1},
			{EntityType: entity.EntityTypeLandmark, EntityID: "old-lighthouse", URL: "/usercontent/images/landmarks/old-lighthouse.jpg", IsPrimary: true},
			{EntityType: entity.EntityTypeLandmark, EntityID: "old-lighthouse", URL: "/usercontent/images/landmarks/old-lighthouse-gallery.jpg", OrderIndex: 1},
			{EntityType: entity.EntityTypeLandmark, EntityID: "city-botanical-garden", URL: "/usercontent/images/landmarks/botanical-garden-glasshouse.jpg", IsPrimary: true},
		},
		reviews: []seedReview{
			{entity.EntityTypeSpot, "harbor-noodle-bar", 5, "Best broth in town, go early to get a counter seat."},
			{entity.EntityTypeSpot, "lantern-coffee", 4, "Great flat white, the garden fills up fast on weekends."},
			{entity.EntityTypeSpot, "north-gate-market", 4, "Try the dumpling stall at the back."},
			{entity.EntityTypeLandmark, "old-lighthouse", 5, "Worth the climb for the sunset view."},
			{entity.EntityTypeLandmark, "city-botanical-garden", 5, "The glasshouses are lovely on a rainy day."},
			{entity.EntityTypeLandmark, "clock-tower", 3, "Nice photo stop, not much else to do."},
		},
	}
}
