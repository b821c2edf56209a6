package impl

import (
	"encoding/json"
	"log/slog"

	"localguide/internal/domain/entity"
	"localguide/internal/usecase"
)

// placeImages is the resolved image set of one entity.
type placeImages struct {
	primary string
	list    []string
}

// resolveImages picks the primary image and orders the rest. images must already be
// sorted by (OrderIndex, ID). The first primary row wins; further primaries are logged
// and dropped so the same picture never appears twice.
func resolveImages(logger *slog.Logger, place *entity.PlaceInfo, images []*entity.Image) placeImages {
	var primary *entity.Image
	extra := make([]string, 0, len(images))
	for _, img := range images {
		if !img.IsPrimary {
			extra = append(extra, img.URL)

			continue
		}
		if primary != nil {
			logger.Warn("Entity has more than one primary image, keeping the first",
				slog.String("entity_id", place.ID),
				slog.Int64("kept_image_id", primary.ID),
				slog.Int64("ignored_image_id", img.ID),
			)

			continue
		}
		primary = img
	}

	resolved := placeImages{primary: place.Image}
	if primary != nil {
		resolved.primary = primary.URL
	}

	resolved.list = make([]string, 0, len(extra)+1)
	if resolved.primary != "" {
		resolved.list = append(resolved.list, resolved.primary)
	}
	resolved.list = append(resolved.list, extra...)

	return resolved
}

// parseHours returns the stored opening hours as raw JSON. Malformed values are
// logged and rendered as null instead of failing the request.
func parseHours(logger *slog.Logger, place *entity.PlaceInfo) json.RawMessage {
	if place.Hours == nil || *place.Hours == "" {
		return nil
	}

	raw := json.RawMessage(*place.Hours)
	if !json.Valid(raw) {
		logger.Warn("Failed to parse opening hours, rendering null",
			slog.String("entity_id", place.ID),
		)

		return nil
	}

	return raw
}

func toPlaceView(logger *slog.Logger, place *entity.PlaceInfo, images []*entity.Image) usecase.PlaceView {
	resolved := resolveImages(logger, place, images)

	return usecase.PlaceView{
		ID:               place.ID,
		Name:             place.Name,
		Category:         place.Category,
		Description:      place.Description,
		ShortDescription: place.ShortDescription,
		Location:         place.Location,
		Address:          place.Address,
		Hours:            parseHours(logger, place),
		Phone:            place.Phone,
		Website:          place.Website,
		Image:            resolved.primary,
		Images:           resolved.list,
		Latitude:         place.Latitude,
		Longitude:        place.Longitude,
		Rating:           place.Rating,
		CreatedAt:        place.CreatedAt,
		UpdatedAt:        place.UpdatedAt,
	}
}

func toSpotView(logger *slog.Logger, spot *entity.Spot, images []*entity.Image) *usecase.SpotView {
	return &usecase.SpotView{
		PlaceView:  toPlaceView(logger, &spot.PlaceInfo, images),
		PriceRange: spot.PriceRange,
	}
}

func toLandmarkView(logger *slog.Logger, landmark *entity.Landmark, images []*entity.Image) *usecase.LandmarkView {
	return &usecase.LandmarkView{
		PlaceView:    toPlaceView(logger, &landmark.PlaceInfo, images),
		History:      landmark.History,
		AdmissionFee: landmark.AdmissionFee,
	}
}

func groupImagesByEntity(images []*entity.Image) map[string][]*entity.Image {
	grouped := make(map[string][]*entity.Image)
	for _, img := range images {
		grouped[img.EntityID] = append(grouped[img.EntityID], img)
	}

	return grouped
}

func toImageView(img *entity.Image) *usecase.ImageView {
	return &usecase.ImageView{
		ID:         img.ID,
		EntityType: img.EntityType.String(),
		EntityID:   img.EntityID,
		URL:        img.URL,
		IsPrimary:  img.IsPrimary,
		OrderIndex: img.OrderIndex,
		CreatedAt:  img.CreatedAt,
	}
}

func toReviewView(review *entity.Review) *usecase.ReviewView {
	return &usecase.ReviewView{
		ID:         review.ID,
		UserID:     review.UserID,
		UserName:   review.UserName,
		EntityType: review.EntityType.String(),
		EntityID:   review.EntityID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}
}

