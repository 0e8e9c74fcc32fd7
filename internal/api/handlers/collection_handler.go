package handlers

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/internal/api/presenters"
	"Recipe-Share-Backend/pkg/collection"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CollectionHandler interface {
		CreateCollection(c *fiber.Ctx) error
		UpdateCollection(c *fiber.Ctx) error
		DeleteCollection(c *fiber.Ctx) error
		GetCollection(c *fiber.Ctx) error
		GetMyCollections(c *fiber.Ctx) error
		GetUserCollections(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		RemoveRecipe(c *fiber.Ctx) error
	}

	collectionHandler struct {
		collectionService collection.CollectionService
		validator         *validator.Validate
	}
)

func NewCollectionHandler(collectionService collection.CollectionService, validator *validator.Validate) CollectionHandler {
	return &collectionHandler{
		collectionService: collectionService,
		validator:         validator,
	}
}

func (h *collectionHandler) CreateCollection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CollectionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveCollection, err)
	}

	res, err := h.collectionService.CreateCollection(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedSaveCollection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveCollection)
}

func (h *collectionHandler) UpdateCollection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CollectionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveCollection, err)
	}

	res, err := h.collectionService.UpdateCollection(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedSaveCollection, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCollection)
}

func (h *collectionHandler) DeleteCollection(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.collectionService.DeleteCollection(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedSaveCollection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCollection)
}

func (h *collectionHandler) GetCollection(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	res, err := h.collectionService.GetCollection(c.Context(), c.Params("id"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetCollections, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCollections)
}

func (h *collectionHandler) GetMyCollections(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	collections, meta, err := h.collectionService.GetMyCollections(c.Context(), userID, parsePageRequest(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetCollections, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"collections": collections,
		"meta":        meta,
	}, fiber.StatusOK, domain.MessageSuccessGetCollections)
}

func (h *collectionHandler) GetUserCollections(c *fiber.Ctx) error {
	collections, meta, err := h.collectionService.GetUserPublicCollections(c.Context(), c.Params("id"), parsePageRequest(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedGetCollections, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"collections": collections,
		"meta":        meta,
	}, fiber.StatusOK, domain.MessageSuccessGetCollections)
}

func (h *collectionHandler) AddRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.collectionService.AddRecipe(c.Context(), c.Params("id"), c.Params("recipeId"), userID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedSaveCollection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCollection)
}

func (h *collectionHandler) RemoveRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.collectionService.RemoveRecipe(c.Context(), c.Params("id"), c.Params("recipeId"), userID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedSaveCollection, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCollection)
}
