package http

import (
	"net/http"
	"strconv"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/broadcast"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/application/usecases/commands"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/application/usecases/queries"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/kernel"
	"github.com/kaisalokaidi-lgtm/kitchen-orders/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler           commands.PlaceOrderCommandHandler
	startPreparingHandler       commands.StartPreparingCommandHandler
	markReadyHandler            commands.MarkReadyCommandHandler
	toggleCheckedHandler        commands.ToggleIngredientCheckedCommandHandler
	collectOrderHandler         commands.CollectOrderCommandHandler
	deliverOrderHandler         commands.DeliverOrderCommandHandler
	clearOrdersHandler          commands.ClearOrdersCommandHandler
	setEligibilityHandler       commands.SetEligibilityCommandHandler
	setCohortEligibilityHandler commands.SetCohortEligibilityCommandHandler
	createUserHandler           commands.CreateUserCommandHandler
	updateUserHandler           commands.UpdateUserCommandHandler
	deleteUserHandler           commands.DeleteUserCommandHandler
	createIngredientHandler     commands.CreateIngredientCommandHandler
	updateIngredientHandler     commands.UpdateIngredientCommandHandler
	deleteIngredientHandler     commands.DeleteIngredientCommandHandler

	// Query handlers
	orderBoardHandler        queries.GetOrderBoardQueryHandler
	readyOrdersHandler       queries.GetReadyOrdersQueryHandler
	courierDeliveriesHandler queries.GetCourierDeliveriesQueryHandler
	deliveredOrdersHandler   queries.GetDeliveredOrdersQueryHandler
	menuHandler              queries.GetMenuQueryHandler

	hub *broadcast.Hub
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	startPreparingHandler commands.StartPreparingCommandHandler,
	markReadyHandler commands.MarkReadyCommandHandler,
	toggleCheckedHandler commands.ToggleIngredientCheckedCommandHandler,
	collectOrderHandler commands.CollectOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	clearOrdersHandler commands.ClearOrdersCommandHandler,
	setEligibilityHandler commands.SetEligibilityCommandHandler,
	setCohortEligibilityHandler commands.SetCohortEligibilityCommandHandler,
	createUserHandler commands.CreateUserCommandHandler,
	updateUserHandler commands.UpdateUserCommandHandler,
	deleteUserHandler commands.DeleteUserCommandHandler,
	createIngredientHandler commands.CreateIngredientCommandHandler,
	updateIngredientHandler commands.UpdateIngredientCommandHandler,
	deleteIngredientHandler commands.DeleteIngredientCommandHandler,
	orderBoardHandler queries.GetOrderBoardQueryHandler,
	readyOrdersHandler queries.GetReadyOrdersQueryHandler,
	courierDeliveriesHandler queries.GetCourierDeliveriesQueryHandler,
	deliveredOrdersHandler queries.GetDeliveredOrdersQueryHandler,
	menuHandler queries.GetMenuQueryHandler,
	hub *broadcast.Hub,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		startPreparingHandler:       startPreparingHandler,
		markReadyHandler:            markReadyHandler,
		toggleCheckedHandler:        toggleCheckedHandler,
		collectOrderHandler:         collectOrderHandler,
		deliverOrderHandler:         deliverOrderHandler,
		clearOrdersHandler:          clearOrdersHandler,
		setEligibilityHandler:       setEligibilityHandler,
		setCohortEligibilityHandler: setCohortEligibilityHandler,
		createUserHandler:           createUserHandler,
		updateUserHandler:           updateUserHandler,
		deleteUserHandler:           deleteUserHandler,
		createIngredientHandler:     createIngredientHandler,
		updateIngredientHandler:     updateIngredientHandler,
		deleteIngredientHandler:     deleteIngredientHandler,
		orderBoardHandler:           orderBoardHandler,
		readyOrdersHandler:          readyOrdersHandler,
		courierDeliveriesHandler:    courierDeliveriesHandler,
		deliveredOrdersHandler:      deliveredOrdersHandler,
		menuHandler:                 menuHandler,
		hub:                         hub,
	}
}

// RegisterRoutes attaches every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.PlaceOrder)
	v1.DELETE("/orders", s.ClearOrders)
	v1.GET("/orders/board", s.GetOrderBoard)
	v1.GET("/orders/ready", s.GetReadyOrders)
	v1.GET("/orders/delivered", s.GetDeliveredOrders)
	v1.POST("/orders/:id/preparing", s.StartPreparing)
	v1.POST("/orders/:id/ready", s.MarkReady)
	v1.POST("/orders/:id/checklist", s.ToggleChecklistItem)
	v1.POST("/orders/:id/collect", s.CollectOrder)
	v1.POST("/orders/:id/deliver", s.DeliverOrder)

	v1.GET("/couriers/:id/deliveries", s.GetCourierDeliveries)

	v1.GET("/menu", s.GetMenu)
	v1.POST("/ingredients", s.CreateIngredient)
	v1.PUT("/ingredients/:id", s.UpdateIngredient)
	v1.DELETE("/ingredients/:id", s.DeleteIngredient)

	v1.POST("/users", s.CreateUser)
	v1.PUT("/users/:id", s.UpdateUser)
	v1.DELETE("/users/:id", s.DeleteUser)
	v1.PUT("/users/:id/eligibility", s.SetEligibility)
	v1.PUT("/cohorts/:cohort/eligibility", s.SetCohortEligibility)

	v1.GET("/events", s.StreamEvents)
}

// PlaceOrder handles POST /api/v1/orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid user id: "+err.Error())
	}

	cmd, err := commands.NewPlaceOrderCommand(userID, request.Selections, request.Instructions)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlacedOrderResponse{ID: orderID})
}

// StartPreparing handles POST /api/v1/orders/:id/preparing.
func (s *Server) StartPreparing(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewStartPreparingCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.startPreparingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkReady handles POST /api/v1/orders/:id/ready.
func (s *Server) MarkReady(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkReadyCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.markReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ToggleChecklistItem handles POST /api/v1/orders/:id/checklist.
func (s *Server) ToggleChecklistItem(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var request ChecklistToggleRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewToggleIngredientCheckedCommand(orderID, request.IngredientKey, request.Checked)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.toggleCheckedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CollectOrder handles POST /api/v1/orders/:id/collect.
func (s *Server) CollectOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	var request CollectOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(request.CourierID)
	if err != nil {
		return writeBadRequest(ctx, "Invalid courier id: "+err.Error())
	}

	cmd, err := commands.NewCollectOrderCommand(orderID, courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.collectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeBadRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearOrders handles DELETE /api/v1/orders - wipes the ledger and checklist.
func (s *Server) ClearOrders(ctx echo.Context) error {
	cmd, err := commands.NewClearOrdersCommand()
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.clearOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderBoard handles GET /api/v1/orders/board.
func (s *Server) GetOrderBoard(ctx echo.Context) error {
	cards, err := s.orderBoardHandler.Handle(ctx.Request().Context(), queries.NewGetOrderBoardQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]BoardCard, len(cards))
	for i, card := range cards {
		lines := make([]BoardLine, len(card.Lines))
		for j, line := range card.Lines {
			lines[j] = BoardLine{Key: line.Key, Name: line.Name}
		}

		response[i] = BoardCard{
			ID:           card.ID,
			Sequence:     card.Sequence,
			Username:     card.Username,
			UserName:     card.UserName,
			Status:       card.Status,
			Instructions: card.Instructions,
			CreatedAt:    card.CreatedAt,
			Lines:        lines,
			CheckedKeys:  card.CheckedKeys,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetReadyOrders handles GET /api/v1/orders/ready.
func (s *Server) GetReadyOrders(ctx echo.Context) error {
	orders, err := s.readyOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetReadyOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ReadyOrder, len(orders))
	for i, entry := range orders {
		response[i] = ReadyOrder{
			ID:           entry.ID,
			Sequence:     entry.Sequence,
			Username:     entry.Username,
			UserName:     entry.UserName,
			Instructions: entry.Instructions,
			CreatedAt:    entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveredOrders handles GET /api/v1/orders/delivered?limit=N.
func (s *Server) GetDeliveredOrders(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return writeBadRequest(ctx, "Invalid limit")
		}

		limit = parsed
	}

	orders, err := s.deliveredOrdersHandler.Handle(ctx.Request().Context(),
		queries.NewGetDeliveredOrdersQuery(limit))
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DeliveredOrder, len(orders))
	for i, entry := range orders {
		response[i] = DeliveredOrder{
			ID:              entry.ID,
			Sequence:        entry.Sequence,
			Username:        entry.Username,
			UserName:        entry.UserName,
			CourierUsername: entry.CourierUsername,
			DeliveredAt:     entry.DeliveredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCourierDeliveries handles GET /api/v1/couriers/:id/deliveries.
func (s *Server) GetCourierDeliveries(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid courier id: "+err.Error())
	}

	query, err := queries.NewGetCourierDeliveriesQuery(courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveries, err := s.courierDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CourierDelivery, len(deliveries))
	for i, entry := range deliveries {
		response[i] = CourierDelivery{
			ID:           entry.ID,
			Sequence:     entry.Sequence,
			Username:     entry.Username,
			UserName:     entry.UserName,
			Instructions: entry.Instructions,
			CollectedAt:  entry.CollectedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.menuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MenuItem, len(items))
	for i, item := range items {
		response[i] = MenuItem{
			ID:          item.ID.String(),
			Name:        item.Name,
			Key:         item.Key,
			Category:    item.Category,
			Emoji:       item.Emoji,
			ImageURL:    item.ImageURL,
			Description: item.Description,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var request CreateUserRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateUserCommand(request.Username, request.Name,
		user.Role(request.Role), request.Cohort)
	if err != nil {
		return writeError(ctx, err)
	}

	userID, err := s.createUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: userID.String()})
}

// UpdateUser handles PUT /api/v1/users/:id.
func (s *Server) UpdateUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid user id: "+err.Error())
	}

	var request UpdateUserRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateUserCommand(userID, user.Role(request.Role),
		request.Cohort, request.IsDelivery)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/v1/users/:id.
func (s *Server) DeleteUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid user id: "+err.Error())
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteUserHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetEligibility handles PUT /api/v1/users/:id/eligibility.
func (s *Server) SetEligibility(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid user id: "+err.Error())
	}

	var request EligibilityRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetEligibilityCommand(userID, request.CanOrder)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.setEligibilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetCohortEligibility handles PUT /api/v1/cohorts/:cohort/eligibility.
func (s *Server) SetCohortEligibility(ctx echo.Context) error {
	var request EligibilityRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetCohortEligibilityCommand(ctx.Param("cohort"), request.CanOrder)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.setCohortEligibilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateIngredient handles POST /api/v1/ingredients.
func (s *Server) CreateIngredient(ctx echo.Context) error {
	var request IngredientRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateIngredientCommand(request.Name, request.Category,
		request.Emoji, request.ImageURL, request.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	ingredientID, err := s.createIngredientHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: ingredientID.String()})
}

// UpdateIngredient handles PUT /api/v1/ingredients/:id.
func (s *Server) UpdateIngredient(ctx echo.Context) error {
	ingredientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid ingredient id: "+err.Error())
	}

	var request IngredientRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateIngredientCommand(ingredientID, request.Name,
		request.Category, request.Emoji, request.ImageURL, request.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.updateIngredientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteIngredient handles DELETE /api/v1/ingredients/:id.
func (s *Server) DeleteIngredient(ctx echo.Context) error {
	ingredientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "Invalid ingredient id: "+err.Error())
	}

	cmd, err := commands.NewDeleteIngredientCommand(ingredientID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteIngredientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func orderIDParam(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}
