package usecase

import (
	"context"

	"storefront-service/src/internal/model"
	"storefront-service/src/internal/model/converter"
	"storefront-service/src/pkg/utils"
)

// ---- delivery zones

func (c *AdminUseCase) CreateZone(ctx context.Context, request *model.DeliveryZoneRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "CreateZone", request)
		return result
	}

	zone := converter.DeliveryZoneFromRequest(request)
	id, err := c.DeliveryRepository.CreateZone(ctx, zone)
	if err != nil {
		result.Error = c.repositoryError(err, "CreateZone", request)
		return result
	}
	zone.ID = id
	result.Data = zone
	return result
}

func (c *AdminUseCase) UpdateZone(ctx context.Context, request *model.DeliveryZoneRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "UpdateZone", request)
		return result
	}

	zone := converter.DeliveryZoneFromRequest(request)
	if err := c.DeliveryRepository.UpdateZone(ctx, zone); err != nil {
		result.Error = c.repositoryError(err, "UpdateZone", request)
		return result
	}
	result.Data = zone
	return result
}

func (c *AdminUseCase) ListZones(ctx context.Context) utils.Result {
	var result utils.Result
	zones, err := c.DeliveryRepository.ListZones(ctx)
	if err != nil {
		result.Error = c.repositoryError(err, "ListZones", "")
		return result
	}
	result.Data = zones
	return result
}

func (c *AdminUseCase) ToggleZone(ctx context.Context, request *model.ToggleRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "ToggleZone", request)
		return result
	}
	if err := c.DeliveryRepository.ToggleZone(ctx, request.ID); err != nil {
		result.Error = c.repositoryError(err, "ToggleZone", request)
		return result
	}
	result.Data = map[string]interface{}{"id": request.ID}
	return result
}

func (c *AdminUseCase) DeleteZone(ctx context.Context, request *model.DeleteRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "DeleteZone", request)
		return result
	}
	if err := c.DeliveryRepository.DeleteZone(ctx, request.ID); err != nil {
		result.Error = c.repositoryError(err, "DeleteZone", request)
		return result
	}
	result.Data = map[string]interface{}{"id": request.ID}
	return result
}

// ---- towns

func (c *AdminUseCase) CreateTown(ctx context.Context, request *model.TownRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "CreateTown", request)
		return result
	}

	town := converter.TownFromRequest(request)
	id, err := c.DeliveryRepository.CreateTown(ctx, town)
	if err != nil {
		result.Error = c.repositoryError(err, "CreateTown", request)
		return result
	}
	town.ID = id
	result.Data = town
	return result
}

func (c *AdminUseCase) UpdateTown(ctx context.Context, request *model.TownRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "UpdateTown", request)
		return result
	}

	town := converter.TownFromRequest(request)
	if err := c.DeliveryRepository.UpdateTown(ctx, town); err != nil {
		result.Error = c.repositoryError(err, "UpdateTown", request)
		return result
	}
	result.Data = town
	return result
}

func (c *AdminUseCase) ListTowns(ctx context.Context) utils.Result {
	var result utils.Result
	towns, err := c.DeliveryRepository.ListTowns(ctx, false)
	if err != nil {
		result.Error = c.repositoryError(err, "ListTowns", "")
		return result
	}
	result.Data = towns
	return result
}

func (c *AdminUseCase) ToggleTown(ctx context.Context, request *model.ToggleRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "ToggleTown", request)
		return result
	}
	if err := c.DeliveryRepository.ToggleTown(ctx, request.ID); err != nil {
		result.Error = c.repositoryError(err, "ToggleTown", request)
		return result
	}
	result.Data = map[string]interface{}{"id": request.ID}
	return result
}

func (c *AdminUseCase) DeleteTown(ctx context.Context, request *model.DeleteRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "DeleteTown", request)
		return result
	}
	if err := c.DeliveryRepository.DeleteTown(ctx, request.ID); err != nil {
		result.Error = c.repositoryError(err, "DeleteTown", request)
		return result
	}
	result.Data = map[string]interface{}{"id": request.ID}
	return result
}

// ---- streets

func (c *AdminUseCase) CreateStreet(ctx context.Context, request *model.StreetRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "CreateStreet", request)
		return result
	}

	street := converter.StreetFromRequest(request)
	id, err := c.DeliveryRepository.CreateStreet(ctx, street)
	if err != nil {
		result.Error = c.repositoryError(err, "CreateStreet", request)
		return result
	}
	street.ID = id
	result.Data = street
	return result
}

func (c *AdminUseCase) ListStreets(ctx context.Context, zoneID uint64) utils.Result {
	var result utils.Result
	streets, err := c.DeliveryRepository.ListStreets(ctx, zoneID)
	if err != nil {
		result.Error = c.repositoryError(err, "ListStreets", zoneID)
		return result
	}
	result.Data = streets
	return result
}

func (c *AdminUseCase) DeleteStreet(ctx context.Context, request *model.DeleteRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "DeleteStreet", request)
		return result
	}
	if err := c.DeliveryRepository.DeleteStreet(ctx, request.ID); err != nil {
		result.Error = c.repositoryError(err, "DeleteStreet", request)
		return result
	}
	result.Data = map[string]interface{}{"id": request.ID}
	return result
}

// ---- payment methods

func (c *AdminUseCase) CreatePaymentMethod(ctx context.Context, request *model.PaymentMethodRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "CreatePaymentMethod", request)
		return result
	}

	method, err := converter.PaymentMethodFromRequest(request)
	if err != nil {
		result.Error = c.validationError(err, "CreatePaymentMethod", request)
		return result
	}
	id, err := c.PaymentMethodRepository.Create(ctx, method)
	if err != nil {
		result.Error = c.repositoryError(err, "CreatePaymentMethod", request)
		return result
	}
	method.ID = id
	result.Data = method
	return result
}

func (c *AdminUseCase) UpdatePaymentMethod(ctx context.Context, request *model.PaymentMethodRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "UpdatePaymentMethod", request)
		return result
	}

	method, err := converter.PaymentMethodFromRequest(request)
	if err != nil {
		result.Error = c.validationError(err, "UpdatePaymentMethod", request)
		return result
	}
	if err := c.PaymentMethodRepository.Update(ctx, method); err != nil {
		result.Error = c.repositoryError(err, "UpdatePaymentMethod", request)
		return result
	}
	result.Data = method
	return result
}

func (c *AdminUseCase) ListPaymentMethods(ctx context.Context) utils.Result {
	var result utils.Result
	methods, err := c.PaymentMethodRepository.List(ctx, false)
	if err != nil {
		result.Error = c.repositoryError(err, "ListPaymentMethods", "")
		return result
	}
	result.Data = methods
	return result
}

func (c *AdminUseCase) DeletePaymentMethod(ctx context.Context, request *model.DeleteRequest) utils.Result {
	var result utils.Result
	if err := c.Validate.Struct(request); err != nil {
		result.Error = c.validationError(err, "DeletePaymentMethod", request)
		return result
	}
	if err := c.PaymentMethodRepository.Delete(ctx, request.ID); err != nil {
		result.Error = c.repositoryError(err, "DeletePaymentMethod", request)
		return result
	}
	result.Data = map[string]interface{}{"id": request.ID}
	return result
}
