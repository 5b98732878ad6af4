package handlers

import (
	"stocktrack/internal/models"
	"stocktrack/internal/services"
)

// Per-entity handler families. Each is the generic resource surface
// instantiated with the entity's model, payload types and service.

type BrandHandlers = ResourceHandlers[models.Brand, services.CreateBrandRequest, services.PatchBrandRequest]

func NewBrandHandlers(svc services.BrandService) *BrandHandlers {
	return NewResourceHandlers[models.Brand, services.CreateBrandRequest, services.PatchBrandRequest](
		"Brand", svc, func(b *models.Brand) int64 { return b.ID })
}

type ItemTypeHandlers = ResourceHandlers[models.ItemType, services.CreateItemTypeRequest, services.PatchItemTypeRequest]

func NewItemTypeHandlers(svc services.ItemTypeService) *ItemTypeHandlers {
	return NewResourceHandlers[models.ItemType, services.CreateItemTypeRequest, services.PatchItemTypeRequest](
		"ItemType", svc, func(it *models.ItemType) int64 { return it.ID })
}

type LocationHandlers = ResourceHandlers[models.Location, services.CreateLocationRequest, services.PatchLocationRequest]

func NewLocationHandlers(svc services.LocationService) *LocationHandlers {
	return NewResourceHandlers[models.Location, services.CreateLocationRequest, services.PatchLocationRequest](
		"Location", svc, func(l *models.Location) int64 { return l.ID })
}

type ItemHandlers = ResourceHandlers[models.Item, services.CreateItemRequest, services.PatchItemRequest]

func NewItemHandlers(svc services.ItemService) *ItemHandlers {
	return NewResourceHandlers[models.Item, services.CreateItemRequest, services.PatchItemRequest](
		"Item", svc, func(i *models.Item) int64 { return i.ID })
}
