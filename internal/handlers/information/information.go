package information

import (
	"context"
	"net/http"

	"ppob-api/internal/domain"
	"ppob-api/internal/dto"
	"ppob-api/pkg/utils"
)

type Service interface {
	GetServices(ctx context.Context) ([]domain.Service, error)
	GetBanners(ctx context.Context) ([]domain.Banner, error)
}

type InformationHandler struct {
	catalogService Service
}

func New(catalogService Service) *InformationHandler {
	return &InformationHandler{
		catalogService: catalogService,
	}
}

// GetServices godoc
//
//	@Summary		List PPOB services
//	@Tags			Information
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response{data=[]dto.ServiceResponseDTO}
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/services [get]
func (h *InformationHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.GetServices(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.StatusInternalError, "Internal server error")
		return
	}

	response := make([]dto.ServiceResponseDTO, len(services))
	for i, service := range services {
		response[i] = dto.ServiceResponseDTO{
			ServiceCode:   service.ServiceCode,
			ServiceName:   service.ServiceName,
			ServiceIcon:   service.ServiceIcon,
			ServiceTariff: service.ServiceTariff.InexactFloat64(),
		}
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Success", response)
}

// GetBanners godoc
//
//	@Summary		List promotional banners
//	@Tags			Information
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	utils.Response{data=[]dto.BannerResponseDTO}
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/banner [get]
func (h *InformationHandler) GetBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.catalogService.GetBanners(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, utils.StatusInternalError, "Internal server error")
		return
	}

	response := make([]dto.BannerResponseDTO, len(banners))
	for i, banner := range banners {
		response[i] = dto.BannerResponseDTO{
			BannerName:  banner.BannerName,
			BannerImage: banner.BannerImage,
			Description: banner.Description,
		}
	}
	utils.RespondWithSuccess(w, http.StatusOK, "Success", response)
}
