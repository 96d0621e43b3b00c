package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/nickmonteleone/sharebandb-backend/internal/domain"
	"github.com/nickmonteleone/sharebandb-backend/internal/service"
	"github.com/nickmonteleone/sharebandb-backend/internal/transport/http/middleware"
	"github.com/nickmonteleone/sharebandb-backend/pkg/validator"
	"go.uber.org/zap"
)

const maxPhotoUploadBytes = 10 << 20

type ListingHandler struct {
	listingService *service.ListingService
	photoService   *service.PhotoService
	ownerFromToken bool
	logger         *zap.Logger
}

func NewListingHandler(listingService *service.ListingService, photoService *service.PhotoService, ownerFromToken bool, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		photoService:   photoService,
		ownerFromToken: ownerFromToken,
		logger:         logger,
	}
}

// createListingRequest uses pointer fields so absent and zero-valued
// inputs validate differently.
type createListingRequest struct {
	Name        *string                   `json:"name"`
	Address     *string                   `json:"address"`
	Description *string                   `json:"description"`
	Price       *float64                  `json:"price"`
	OwnerUserID *int64                    `json:"owner_user_id"`
	Photos      []service.PhotoDescriptor `json:"photos"`
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	listings, err := h.listingService.Search(r.Context(), search)
	if err != nil {
		h.logger.Error("search listings failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if listings == nil {
		listings = []domain.Listing{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": listings})
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Listing not found")
		return
	}

	listing, err := h.listingService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			writeError(w, http.StatusNotFound, "Listing not found")
		} else {
			h.logger.Error("get listing failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": listing})
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if h.ownerFromToken {
		req.OwnerUserID = &user.ID
	}

	errs := validator.ValidateListing(validator.ListingInput{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Price:       req.Price,
		OwnerUserID: req.OwnerUserID,
	})
	if errs.HasErrors() {
		writeFieldErrors(w, errs)
		return
	}

	listing, err := h.listingService.Create(r.Context(), user.ID, service.CreateListingInput{
		Name:        *req.Name,
		Address:     *req.Address,
		Description: *req.Description,
		Price:       *req.Price,
		OwnerUserID: *req.OwnerUserID,
		Photos:      req.Photos,
	})
	if err != nil {
		h.logger.Error("create listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"added": listing})
}

func (h *ListingHandler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Listing not found")
		return
	}

	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	var description *string
	if values, ok := r.MultipartForm.Value["description"]; ok && len(values) > 0 {
		description = &values[0]
	}

	file, header, err := r.FormFile("file")
	hasFile := err == nil
	contentType := ""
	if hasFile {
		defer file.Close()
		contentType = header.Header.Get("Content-Type")
	}

	if errs := validator.ValidatePhoto(description, hasFile, contentType); errs.HasErrors() {
		writeFieldErrors(w, errs)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	photo, err := h.photoService.Add(r.Context(), service.AddPhotoInput{
		ListingID:   listingID,
		Description: *description,
		FileName:    header.Filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			writeError(w, http.StatusNotFound, "Listing not found")
		} else {
			h.logger.Error("add photo failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"added": photo})
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Listing not found")
		return
	}

	if err := h.listingService.Delete(r.Context(), user.ID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrListingNotFound):
			writeError(w, http.StatusNotFound, "Listing not found")
		case errors.Is(err, service.ErrNotListingOwner):
			writeError(w, http.StatusForbidden, "Only the listing owner can delete it")
		default:
			h.logger.Error("delete listing failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
