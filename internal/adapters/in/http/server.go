package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"minishop/internal/core/application/usecases/commands"
	"minishop/internal/core/application/usecases/queries"
	"minishop/internal/core/domain/model/kernel"
	"minishop/internal/core/domain/model/order"
	"minishop/internal/core/domain/model/product"
	"minishop/internal/core/domain/model/revenue"
	"minishop/internal/core/domain/model/tariff"
	"minishop/internal/core/ports"
	"minishop/internal/core/domain/services"
	"minishop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const reportDateLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases.
// All order endpoints are keyed by dispatch code only; the API never
// carries customer identity.
type Server struct {
	// Command handlers
	placeOrderHandler      commands.PlaceOrderCommandHandler
	dispatchOrderHandler   commands.DispatchOrderCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	addProductHandler      commands.AddProductCommandHandler
	setFeesHandler         commands.SetFeesCommandHandler

	// Query handlers
	getFeesHandler          queries.GetFeesQueryHandler
	getStockHandler         queries.GetStockQueryHandler
	getRevenueReportHandler queries.GetRevenueReportQueryHandler

	// Report renderers by format query parameter value
	exporters map[string]ports.ReportExporter
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	dispatchOrderHandler commands.DispatchOrderCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	addProductHandler commands.AddProductCommandHandler,
	setFeesHandler commands.SetFeesCommandHandler,
	getFeesHandler queries.GetFeesQueryHandler,
	getStockHandler queries.GetStockQueryHandler,
	getRevenueReportHandler queries.GetRevenueReportQueryHandler,
	exporters map[string]ports.ReportExporter,
) *Server {
	return &Server{
		placeOrderHandler:       placeOrderHandler,
		dispatchOrderHandler:    dispatchOrderHandler,
		confirmDeliveryHandler:  confirmDeliveryHandler,
		cancelOrderHandler:      cancelOrderHandler,
		addProductHandler:       addProductHandler,
		setFeesHandler:          setFeesHandler,
		getFeesHandler:          getFeesHandler,
		getStockHandler:         getStockHandler,
		getRevenueReportHandler: getRevenueReportHandler,
		exporters:               exporters,
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/fees", s.GetFees)
	api.PUT("/fees", s.SetFees)

	api.GET("/products", s.GetStock)
	api.POST("/products", s.AddProduct)

	api.POST("/orders", s.PlaceOrder)
	api.POST("/orders/:code/dispatch", s.DispatchOrder)
	api.POST("/orders/:code/delivered", s.ConfirmDelivery)
	api.POST("/orders/:code/cancel", s.CancelOrder)

	api.GET("/reports/revenue", s.GetRevenueReport)
}

// Error is the body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItem is one cart position in a place-order request.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// NewOrder is the request body for POST /api/v1/orders.
type NewOrder struct {
	Items      []OrderItem `json:"items"`
	DistanceKm float64     `json:"distance_km"`
}

// Order is the response body for a placed order.
type Order struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	DistanceKm float64   `json:"distance_km"`
	Fee        string    `json:"fee"`
	Total      string    `json:"total"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewProduct is the request body for POST /api/v1/products.
type NewProduct struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Stock int    `json:"stock"`
}

// Product is one catalog row in the stock listing.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Stock int    `json:"stock"`
}

// FeeTier is one configured tariff tier.
type FeeTier struct {
	MaxDistanceKm float64 `json:"max_distance_km"`
	Fee           string  `json:"fee"`
}

// FeeTable is the body for GET and PUT /api/v1/fees.
type FeeTable struct {
	Tiers []FeeTier `json:"tiers"`
}

// RevenueEntry is one ledger row in the JSON revenue report.
type RevenueEntry struct {
	OrderCode  string    `json:"order_code"`
	Amount     string    `json:"amount"`
	RecordedAt time.Time `json:"recorded_at"`
}

// PlaceOrder handles POST /api/v1/orders - places a new cash order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	distance, err := kernel.NewDistance(newOrder.DistanceKm)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid distance: "+err.Error())
	}

	items := make([]commands.OrderItem, 0, len(newOrder.Items))
	for _, item := range newOrder.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid product id: "+item.ProductID)
		}
		items = append(items, commands.OrderItem{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), items, distance)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return businessErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderResponse(placed))
}

// DispatchOrder handles POST /api/v1/orders/:code/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	code, err := kernel.DispatchCodeFromString(ctx.Param("code"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid dispatch code: "+err.Error())
	}

	cmd, err := commands.NewDispatchOrderCommand(code)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid dispatch code: "+err.Error())
	}

	if handleErr := s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/:code/delivered.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	code, err := kernel.DispatchCodeFromString(ctx.Param("code"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid dispatch code: "+err.Error())
	}

	cmd, err := commands.NewConfirmDeliveryCommand(code)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid dispatch code: "+err.Error())
	}

	if handleErr := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:code/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	code, err := kernel.DispatchCodeFromString(ctx.Param("code"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid dispatch code: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(code)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid dispatch code: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddProduct handles POST /api/v1/products - registers a catalog product.
func (s *Server) AddProduct(ctx echo.Context) error {
	var newProduct NewProduct
	if err := ctx.Bind(&newProduct); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(newProduct.Price)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewAddProductCommand(kernel.NewUUID(), newProduct.Name, price, newProduct.Stock)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid product data: "+err.Error())
	}

	if handleErr := s.addProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetStock handles GET /api/v1/products - lists the catalog with shelf counts.
func (s *Server) GetStock(ctx echo.Context) error {
	stock, err := s.getStockHandler.Handle(ctx.Request().Context(), queries.NewGetStockQuery())
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve stock")
	}

	response := make([]Product, len(stock))
	for i, row := range stock {
		response[i] = Product{
			ID:    row.ID.String(),
			Name:  row.Name,
			Price: row.Price,
			Stock: row.Stock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetFees handles GET /api/v1/fees - returns the configured fee table.
func (s *Server) GetFees(ctx echo.Context) error {
	tiers, err := s.getFeesHandler.Handle(ctx.Request().Context(), queries.NewGetFeesQuery())
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve fees")
	}

	response := FeeTable{Tiers: make([]FeeTier, len(tiers))}
	for i, tier := range tiers {
		response.Tiers[i] = FeeTier{MaxDistanceKm: tier.MaxDistanceKm, Fee: tier.Fee}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetFees handles PUT /api/v1/fees - replaces the fee table atomically.
func (s *Server) SetFees(ctx echo.Context) error {
	var feeTable FeeTable
	if err := ctx.Bind(&feeTable); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	tiers := make([]tariff.Tier, 0, len(feeTable.Tiers))
	for _, row := range feeTable.Tiers {
		fee, feeErr := kernel.MoneyFromString(row.Fee)
		if feeErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid fee: "+feeErr.Error())
		}
		tier, tierErr := tariff.NewTier(row.MaxDistanceKm, fee)
		if tierErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid tier: "+tierErr.Error())
		}
		tiers = append(tiers, tier)
	}

	cmd, err := commands.NewSetFeesCommand(tiers)
	if err != nil {
		return businessErrorResponse(ctx, err)
	}

	if handleErr := s.setFeesHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return businessErrorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetRevenueReport handles GET /api/v1/reports/revenue.
// Accepts from and to dates (inclusive) and an optional format parameter.
// Without a format the report is returned as JSON; with format=csv or
// format=pdf the matching exporter renders a downloadable document.
func (s *Server) GetRevenueReport(ctx echo.Context) error {
	from, err := time.Parse(reportDateLayout, ctx.QueryParam("from"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
	}
	to, err := time.Parse(reportDateLayout, ctx.QueryParam("to"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
	}

	// The to date covers the whole day.
	query, err := queries.NewGetRevenueReportQuery(from, to.Add(24*time.Hour-time.Nanosecond))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid report range: "+err.Error())
	}

	rows, err := s.getRevenueReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve revenue report")
	}

	format := ctx.QueryParam("format")
	if format == "" {
		response := make([]RevenueEntry, len(rows))
		for i, row := range rows {
			response[i] = RevenueEntry{
				OrderCode:  row.OrderCode,
				Amount:     row.Amount,
				RecordedAt: row.RecordedAt,
			}
		}
		return ctx.JSON(http.StatusOK, response)
	}

	exporter, ok := s.exporters[format]
	if !ok {
		return errorResponse(ctx, http.StatusBadRequest, "Unsupported report format: "+format)
	}

	entries, err := restoreEntries(rows)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to render revenue report")
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", "revenue."+exporter.FileExtension()))
	ctx.Response().Header().Set(echo.HeaderContentType, exporter.ContentType())
	ctx.Response().WriteHeader(http.StatusOK)

	return exporter.Export(ctx.Response(), entries)
}

func orderResponse(placed *order.Order) Order {
	return Order{
		ID:         placed.ID().String(),
		Code:       placed.Code().String(),
		DistanceKm: placed.Distance().Kilometers(),
		Fee:        placed.Fee().String(),
		Total:      placed.Total().String(),
		Status:     placed.Status().String(),
		CreatedAt:  placed.CreatedAt(),
	}
}

func restoreEntries(rows []queries.GetRevenueReportQueryResponse) ([]revenue.Entry, error) {
	entries := make([]revenue.Entry, 0, len(rows))
	for _, row := range rows {
		code, err := kernel.DispatchCodeFromString(row.OrderCode)
		if err != nil {
			return nil, err
		}
		amount, err := kernel.MoneyFromString(row.Amount)
		if err != nil {
			return nil, err
		}
		entry, err := revenue.RestoreEntry(code, amount, row.RecordedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func errorResponse(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{Code: status, Message: message})
}

// businessErrorResponse maps domain and application errors to HTTP statuses.
func businessErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, tariff.ErrOutOfRange):
		return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrUnknownProduct):
		return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, product.ErrInsufficientStock):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrInvalidTransition):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, tariff.ErrInvalidConfiguration):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, commands.ErrDispatchFailed):
		return errorResponse(ctx, http.StatusBadGateway, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}
