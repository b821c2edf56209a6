package postgres

import (
	"localguide/internal/domain/entity"
	"localguide/internal/infra/persistence/model"
)

// --- Mapper Functions ---
// Spots and landmarks share their column set, so the shared part is mapped once.

func toPlaceInfoDomain(data *model.PlaceColumns) entity.PlaceInfo {
	return entity.PlaceInfo{
		ID:               data.ID,
		Name:             data.Name,
		Category:         data.Category,
		Description:      data.Description,
		ShortDescription: data.ShortDescription,
		Location:         data.Location,
		Address:          data.Address,
		Hours:            data.Hours,
		Phone:            data.Phone,
		Website:          data.Website,
		Image:            data.Image,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		Rating:           data.Rating,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromPlaceInfoDomain(data *entity.PlaceInfo) model.PlaceColumns {
	return model.PlaceColumns{
		ID:               data.ID,
		Name:             data.Name,
		Category:         data.Category,
		Description:      data.Description,
		ShortDescription: data.ShortDescription,
		Location:         data.Location,
		Address:          data.Address,
		Hours:            data.Hours,
		Phone:            data.Phone,
		Website:          data.Website,
		Image:            data.Image,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		Rating:           data.Rating,
	}
}

func toSpotDomain(data *model.SpotModel) *entity.Spot {
	if data == nil {
		return nil
	}

	return &entity.Spot{
		PlaceInfo:  toPlaceInfoDomain(&data.PlaceColumns),
		PriceRange: data.PriceRange,
	}
}

func fromSpotDomain(data *entity.Spot) *model.SpotModel {
	if data == nil {
		return nil
	}

	return &model.SpotModel{
		PlaceColumns: fromPlaceInfoDomain(&data.PlaceInfo),
		PriceRange:   data.PriceRange,
	}
}

func toLandmarkDomain(data *model.LandmarkModel) *entity.Landmark {
	if data == nil {
		return nil
	}

	return &entity.Landmark{
		PlaceInfo:    toPlaceInfoDomain(&data.PlaceColumns),
		History:      data.History,
		AdmissionFee: data.AdmissionFee,
	}
}

func fromLandmarkDomain(data *entity.Landmark) *model.LandmarkModel {
	if data == nil {
		return nil
	}

	return &model.LandmarkModel{
		PlaceColumns: fromPlaceInfoDomain(&data.PlaceInfo),
		History:      data.History,
		AdmissionFee: data.AdmissionFee,
	}
}
