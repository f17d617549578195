package handler

import (
	"context"
	"strconv"
	"strings"
	"time"

	"style-sync/internal/delivery/http/dto"
	"style-sync/internal/delivery/http/middleware"
	"style-sync/internal/domain/outfit"
	"style-sync/internal/domain/profile"
	"style-sync/internal/infrastructure/backend"
	"style-sync/internal/pkg/response"
	"style-sync/internal/usecase"
	"style-sync/internal/usecase/dailyoutfit"

	"github.com/gofiber/fiber/v3"
)

type DailyOutfitService interface {
	Get(ctx context.Context, id profile.Identity, p dailyoutfit.Params) (dailyoutfit.Result, error)
	SaveLocation(ctx context.Context, id profile.Identity, loc dailyoutfit.Location) (dailyoutfit.Location, error)
}

type OutfitHandler struct {
	uc    usecase.OutfitUsecase
	daily DailyOutfitService
}

func NewOutfitHandler(uc usecase.OutfitUsecase, daily DailyOutfitService) *OutfitHandler {
	return &OutfitHandler{uc: uc, daily: daily}
}

func (h *OutfitHandler) Generate(c fiber.Ctx) error {
	id, err := requireIdentity(c)
	if err != nil {
		return err
	}
	var req dto.GenerateOutfitRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	res, err := h.uc.Generate(c.Context(), id, usecase.GenerateInput{
		Occasion: req.Occasion,
		Style:    req.Style,
		Mood:     req.Mood,
		Weather:  req.Weather,
		Notes:    req.Notes,
		AutoSave: req.AutoSave,
	})
	if err != nil {
		return mapError(err)
	}
	if res.Fallback {
		return response.Fallback(c, res)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *OutfitHandler) Create(c fiber.Ctx) error {
	id, err := requireIdentity(c)
	if err != nil {
		return err
	}
	var req outfit.Outfit
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	out, err := h.uc.Create(c.Context(), id, req)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Outfit created", out)
}

func (h *OutfitHandler) Wear(c fiber.Ctx) error {
	id, err := requireIdentity(c)
	if err != nil {
		return err
	}
	var req dto.WearOutfitRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	in := backend.WearRequest{OutfitID: req.OutfitID}
	if ws := strings.TrimSpace(req.WornAt); ws != "" {
		t, err := time.Parse(time.RFC3339, ws)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "wornAt must be RFC3339", nil, err)
		}
		in.WornAt = t
	}

	out, err := h.uc.Wear(c.Context(), id, in)
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *OutfitHandler) Rate(c fiber.Ctx) error {
	id, err := requireIdentity(c)
	if err != nil {
		return err
	}
	var req dto.RatingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	ack, err := h.uc.SubmitRating(c.Context(), id, req.ToRating(c.Params("id")))
	if err != nil {
		return mapError(err)
	}
	return response.Accepted(c, ack)
}

func (h *OutfitHandler) Daily(c fiber.Ctx) error {
	id, err := requireIdentity(c)
	if err != nil {
		return err
	}

	p := dailyoutfit.Params{
		Date:    c.Query("date"),
		Refresh: c.Query("refresh") == "true",
	}
	if p.Lat, err = queryFloat(c, "lat"); err != nil {
		return err
	}
	if p.Lon, err = queryFloat(c, "lon"); err != nil {
		return err
	}

	res, err := h.daily.Get(c.Context(), id, p)
	if err != nil {
		return mapError(err)
	}
	if res.Fallback {
		return response.Fallback(c, res)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *OutfitHandler) SaveLocation(c fiber.Ctx) error {
	id, err := requireIdentity(c)
	if err != nil {
		return err
	}
	var req dto.LocationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if req.Lat == nil || req.Lon == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "lat and lon are required", nil, nil)
	}

	loc, err := h.daily.SaveLocation(c.Context(), id, dailyoutfit.Location{Lat: *req.Lat, Lon: *req.Lon, Label: req.Label})
	if err != nil {
		return mapError(err)
	}
	return response.Success(c, fiber.StatusOK, "Location saved", loc)
}

func queryFloat(c fiber.Ctx, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, key+" must be a number", nil, err)
	}
	return &v, nil
}
