package dto

type ServiceResponseDTO struct {
	ServiceCode   string  `json:"service_code" example:"PULSA"`
	ServiceName   string  `json:"service_name" example:"Pulsa"`
	ServiceIcon   string  `json:"service_icon" example:"/icons/pulsa.png"`
	ServiceTariff float64 `json:"service_tariff" example:"40000"`
}

type BannerResponseDTO struct {
	BannerName  string `json:"banner_name" example:"Banner 1"`
	BannerImage string `json:"banner_image" example:"/banners/banner-1.png"`
	Description string `json:"description" example:"Lorem Ipsum Dolor sit amet"`
}
