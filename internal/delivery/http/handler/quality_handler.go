package handler

import (
	"errors"
	"sort"

	"skill-path/internal/delivery/http/dto"
	"skill-path/internal/delivery/http/middleware"
	"skill-path/internal/domain/quality"
	"skill-path/internal/pkg/response"
	"skill-path/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type QualityHandler struct {
	uc usecase.QualityUsecase
}

func NewQualityHandler(uc usecase.QualityUsecase) *QualityHandler {
	return &QualityHandler{uc: uc}
}

func (h *QualityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/models")
	grp.Get("/quality", h.ListReports)
	grp.Get("/quality/:store", h.GetReport)
	grp.Get("/production-ready", h.ProductionReady)
}

func (h *QualityHandler) ListReports(c fiber.Ctx) error {
	reports, err := h.uc.Reports(c.Context())
	if err != nil {
		return mapQualityUsecaseError(err)
	}

	names := make([]string, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]dto.QualityReportResponse, 0, len(names))
	for _, name := range names {
		out = append(out, toQualityReportResponse(reports[name]))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *QualityHandler) GetReport(c fiber.Ctx) error {
	store := c.Params("store")

	report, err := h.uc.Report(c.Context(), store)
	if err != nil {
		return mapQualityUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toQualityReportResponse(report))
}

func (h *QualityHandler) ProductionReady(c fiber.Ctx) error {
	gates, err := h.uc.ProductionGates(c.Context())
	if err != nil {
		return mapQualityUsecaseError(err)
	}

	out := make([]dto.ProductionGateResponse, 0, len(gates))
	for _, g := range gates {
		out = append(out, dto.ProductionGateResponse{Store: g.Store, Ready: g.Ready, Warnings: g.Warnings})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func toQualityReportResponse(r quality.Report) dto.QualityReportResponse {
	return dto.QualityReportResponse{
		Store:      r.Store,
		Status:     r.Status,
		TotalRules: r.TotalRules,
		Support:    toMetricStatsResponse(r.Support),
		Confidence: toMetricStatsResponse(r.Confidence),
		Lift:       toMetricStatsResponse(r.Lift),
		Distribution: dto.QualityDistributionResponse{
			HighConfidence:   r.Distribution.High,
			MediumConfidence: r.Distribution.Medium,
			LowConfidence:    r.Distribution.Low,
		},
		StrongRules: r.StrongRules,
		Coverage: dto.CoverageResponse{
			UniqueAntecedents: r.Coverage.UniqueAntecedents,
			UniqueConsequents: r.Coverage.UniqueConsequents,
			TotalUniqueItems:  r.Coverage.TotalUniqueItems,
		},
	}
}

func toMetricStatsResponse(s quality.MetricStats) dto.MetricStatsResponse {
	return dto.MetricStatsResponse{
		Min:    s.Min,
		Mean:   s.Mean,
		Median: s.Median,
		Max:    s.Max,
		Std:    s.Std,
		Q25:    s.Q25,
		Q75:    s.Q75,
	}
}

func mapQualityUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrStoreUnknown):
		return middleware.NewAppError(fiber.StatusNotFound, "Unknown rule store", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
