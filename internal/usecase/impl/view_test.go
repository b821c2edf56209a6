package impl

import (
	"testing"

	"localguide/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestResolveImages(t *testing.T) {
	logger := newDiscardLogger()
	place := &entity.PlaceInfo{ID: "p1", Image: "/legacy.jpg"}

	tests := []struct {
		name        string
		place       *entity.PlaceInfo
		images      []*entity.Image
		wantPrimary string
		wantList    []string
	}{
		{
			name:        "no image rows falls back to legacy image",
			place:       place,
			images:      nil,
			wantPrimary: "/legacy.jpg",
			wantList:    []string{"/legacy.jpg"},
		},
		{
			name:  "primary first then the rest by order index",
			place: place,
			images: []*entity.Image{
				{ID: 3, URL: "/a.jpg", OrderIndex: 0},
				{ID: 1, URL: "/primary.jpg", IsPrimary: true, OrderIndex: 1},
				{ID: 2, URL: "/b.jpg", OrderIndex: 2},
			},
			wantPrimary: "/primary.jpg",
			wantList:    []string{"/primary.jpg", "/a.jpg", "/b.jpg"},
		},
		{
			name:  "no primary row keeps legacy image in front",
			place: place,
			images: []*entity.Image{
				{ID: 1, URL: "/a.jpg", OrderIndex: 0},
			},
			wantPrimary: "/legacy.jpg",
			wantList:    []string{"/legacy.jpg", "/a.jpg"},
		},
		{
			name:  "first primary wins and extra primaries are dropped",
			place: place,
			images: []*entity.Image{
				{ID: 1, URL: "/first.jpg", IsPrimary: true, OrderIndex: 0},
				{ID: 2, URL: "/second.jpg", IsPrimary: true, OrderIndex: 0},
				{ID: 3, URL: "/c.jpg", OrderIndex: 1},
			},
			wantPrimary: "/first.jpg",
			wantList:    []string{"/first.jpg", "/c.jpg"},
		},
		{
			name:        "no images and no legacy image",
			place:       &entity.PlaceInfo{ID: "p2"},
			wantPrimary: "",
			wantList:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveImages(logger, tt.place, tt.images)

			assert.Equal(t, tt.wantPrimary, got.primary)
			assert.Equal(t, tt.wantList, got.list)
		})
	}
}

func TestParseHours(t *testing.T) {
	logger := newDiscardLogger()

	assert.Nil(t, parseHours(logger, &entity.PlaceInfo{}))
	assert.Nil(t, parseHours(logger, &entity.PlaceInfo{Hours: strRef("")}))
	assert.Nil(t, parseHours(logger, &entity.PlaceInfo{Hours: strRef("{not json")}))
	assert.JSONEq(t, `{"mon":"9-5"}`, string(parseHours(logger, &entity.PlaceInfo{Hours: strRef(`{"mon":"9-5"}`)})))
}

func TestToSpotView_ExposesOnlyPublicFields(t *testing.T) {
	spot := &entity.Spot{
		PlaceInfo: entity.PlaceInfo{
			ID:    "s1",
			Name:  "Spot",
			Image: "/legacy.jpg",
			Hours: strRef("broken"),
		},
		PriceRange: "$$",
	}

	view := toSpotView(newDiscardLogger(), spot, nil)

	assert.Equal(t, "s1", view.ID)
	assert.Equal(t, "$$", view.PriceRange)
	assert.Equal(t, "/legacy.jpg", view.Image)
	assert.Equal(t, []string{"/legacy.jpg"}, view.Images)
	assert.Nil(t, view.Hours)
	assert.Nil(t, view.DistanceMeters)
}
