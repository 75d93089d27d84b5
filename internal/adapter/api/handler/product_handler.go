package handler

import (
	"rackline/internal/usecase"
	"rackline/pkg/errors"
	"rackline/pkg/response"
	"rackline/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{productUseCase: productUseCase}
}

type productRequest struct {
	SKU             string            `json:"sku" validate:"required"`
	Name            string            `json:"name" validate:"required"`
	Description     string            `json:"description"`
	Brand           string            `json:"brand"`
	Category        string            `json:"category"`
	Image           string            `json:"image"`
	BasePrice       float64           `json:"basePrice" validate:"required,gt=0"`
	StockLevel      int               `json:"stockLevel"`
	Weight          string            `json:"weight"`
	Dimensions      string            `json:"dimensions"`
	Attributes      map[string]string `json:"attributes"`
	Overview        string            `json:"overview"`
	Warranty        string            `json:"warranty"`
	Compatibility   string            `json:"compatibility"`
	Datasheet       string            `json:"datasheet"`
	SchemaOverride  map[string]string `json:"schemaOverride"`
	MetaTitle       string            `json:"metaTitle"`
	MetaDescription string            `json:"metaDescription"`
	Tags            []string          `json:"tags"`
	RedirectTo      string            `json:"redirectTo"`
	RedirectPerm    *bool             `json:"redirectPermanent"`
}

func (r *productRequest) toInput() usecase.CreateProductInput {
	return usecase.CreateProductInput{
		SKU:             r.SKU,
		Name:            r.Name,
		Description:     r.Description,
		Brand:           r.Brand,
		Category:        r.Category,
		Image:           r.Image,
		BasePrice:       r.BasePrice,
		StockLevel:      r.StockLevel,
		Weight:          r.Weight,
		Dimensions:      r.Dimensions,
		Attributes:      r.Attributes,
		Overview:        r.Overview,
		Warranty:        r.Warranty,
		Compatibility:   r.Compatibility,
		Datasheet:       r.Datasheet,
		SchemaOverride:  r.SchemaOverride,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		Tags:            r.Tags,
		RedirectTo:      r.RedirectTo,
		RedirectPerm:    r.RedirectPerm,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productUseCase.List(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, products, total, pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, offline, err := h.productUseCase.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"product": product,
		"offline": offline,
	})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, offline, err := h.productUseCase.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"product": product,
		"offline": offline,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	offline, err := h.productUseCase.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "Product deleted successfully",
		"offline": offline,
	})
}

// BulkUpload accepts the products CSV as a multipart file.
func (h *ProductHandler) BulkUpload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("CSV file is required", err))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Unable to open uploaded file", err))
	}
	defer src.Close()

	result, offline, err := h.productUseCase.BulkImport(c.Request().Context(), src)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"imported": result.Imported,
		"skipped":  result.Skipped,
		"offline":  offline,
	})
}

// RefreshCache forces the product cache entry (or the whole catalog
// when no id is given) to be refetched.
func (h *ProductHandler) RefreshCache(c echo.Context) error {
	if err := h.productUseCase.Refresh(c.Request().Context(), c.QueryParam("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Cache refreshed"})
}
