package api

import (
	"net/http"
	"strconv"

	"github.com/jinzhu/copier"

	"github.com/erazemk/katalog/internal/model"
	"github.com/erazemk/katalog/internal/store"
)

// ItemsHandler handles item CRUD endpoints.
type ItemsHandler struct {
	Store *store.Store
}

// Pointer fields tell an absent key (or null) apart from a zero value.
type createItemRequest struct {
	Title       *string  `json:"title"`
	Owner       *string  `json:"owner"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *float64 `json:"quantity"`
}

// Keys other than these are ignored.
type updateItemRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Editor      *string `json:"editor"`
}

func itemID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, model.Invalid("invalid item id "+strconv.Quote(raw), nil)
	}
	return id, nil
}

// List handles GET /api.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) error {
	items, err := h.Store.ListItems(r.Context())
	if err != nil {
		return err
	}
	jsonData(w, items)
	return nil
}

// Create handles POST /api.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req createItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return model.Invalid("invalid request body", err)
	}

	var in model.NewItem
	if err := copier.Copy(&in, &req); err != nil {
		return model.Invalid("invalid request body", err)
	}

	item, err := h.Store.CreateItem(r.Context(), in)
	if err != nil {
		return err
	}

	logger(r.Context()).Info("item created", "id", item.ID, "owner", item.Owner)
	jsonData(w, item)
	return nil
}

// Get handles GET /api/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) error {
	id, err := itemID(r)
	if err != nil {
		return err
	}

	item, err := h.Store.GetItem(r.Context(), id)
	if err != nil {
		return err
	}
	jsonData(w, item)
	return nil
}

// Update handles PATCH /api/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) error {
	id, err := itemID(r)
	if err != nil {
		return err
	}

	var req updateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return model.Invalid("invalid request body", err)
	}

	var patch model.ItemPatch
	if err := copier.Copy(&patch, &req); err != nil {
		return model.Invalid("invalid request body", err)
	}

	item, err := h.Store.UpdateItem(r.Context(), id, patch)
	if err != nil {
		return err
	}

	if !patch.IsEmpty() {
		logger(r.Context()).Info("item updated", "id", id, "editor", item.Editor)
	}
	jsonData(w, item)
	return nil
}

// Delete handles DELETE /api/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	id, err := itemID(r)
	if err != nil {
		return err
	}

	if err := h.Store.DeleteItem(r.Context(), id); err != nil {
		return err
	}

	logger(r.Context()).Info("item deleted", "id", id)
	jsonResponse(w, http.StatusOK, envelope{Status: statusOK, ID: &id})
	return nil
}
