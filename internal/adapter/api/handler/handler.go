package handler

import (
	"rackline/internal/usecase"
)

var (
	contentHandler  *ContentHandler
	productHandler  *ProductHandler
	categoryHandler *CategoryHandler
	blogHandler     *BlogHandler
	orderHandler    *OrderHandler
	quoteHandler    *QuoteHandler
	trackingHandler *TrackingHandler
	cmsHandler      *CMSHandler
)

func Setup(
	contentUseCase *usecase.ContentUseCase,
	productUseCase *usecase.ProductUseCase,
	categoryUseCase *usecase.CategoryUseCase,
	blogUseCase *usecase.BlogUseCase,
	orderUseCase *usecase.OrderUseCase,
	quoteUseCase *usecase.QuoteUseCase,
	trackingUseCase *usecase.TrackingUseCase,
	cmsAPI usecase.CMSAPI,
) {
	contentHandler = NewContentHandler(contentUseCase)
	productHandler = NewProductHandler(productUseCase)
	categoryHandler = NewCategoryHandler(categoryUseCase)
	blogHandler = NewBlogHandler(blogUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	quoteHandler = NewQuoteHandler(quoteUseCase)
	trackingHandler = NewTrackingHandler(trackingUseCase)
	cmsHandler = NewCMSHandler(cmsAPI)
}

func GetContentHandler() *ContentHandler {
	return contentHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetBlogHandler() *BlogHandler {
	return blogHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetQuoteHandler() *QuoteHandler {
	return quoteHandler
}

func GetTrackingHandler() *TrackingHandler {
	return trackingHandler
}

func GetCMSHandler() *CMSHandler {
	return cmsHandler
}
