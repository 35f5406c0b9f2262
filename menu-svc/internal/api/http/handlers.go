package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"food-ordering/auth"
	"food-ordering/httpx"
	"food-ordering/menu-svc/internal/domain"
	"food-ordering/menu-svc/internal/service"
	"food-ordering/pricing"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog   service.CatalogServiceInterface
	Admin     service.AdminServiceInterface
	Auth      *auth.Issuer
	UploadDir string
}

func NewHandler(catalog service.CatalogServiceInterface, admin service.AdminServiceInterface, issuer *auth.Issuer, uploadDir string) *Handler {
	return &Handler{
		Catalog:   catalog,
		Admin:     admin,
		Auth:      issuer,
		UploadDir: uploadDir,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", httpx.Health("menu-svc")).Methods("GET")

	r.HandleFunc("/api/fetch-all-category", h.getCategories).Methods("GET")
	r.HandleFunc("/api/fetch-foods-by-category/{categoryId}", h.getFoodsByCategory).Methods("GET")
	r.HandleFunc("/api/fetch-all-foods", h.getFoods).Methods("GET")
	r.HandleFunc("/api/fetch-food/{id}", h.getFood).Methods("GET")
	r.HandleFunc("/api/fetch-option", h.getOptions).Methods("GET")
	r.HandleFunc("/api/fetch-deliveryzone", h.getDeliveryZones).Methods("GET")
	r.HandleFunc("/api/fetch-deliveryzone/{city}", h.getDeliveryZone).Methods("GET")
	r.HandleFunc("/api/fetch-extra", h.getExtras).Methods("GET")
	r.HandleFunc("/api/compose-cart-item", h.composeCartItem).Methods("POST")

	r.Handle("/api/create-category", h.protect(h.createCategory)).Methods("POST")
	r.Handle("/api/delete-category", h.protect(h.deleteCategory)).Methods("POST")
	r.Handle("/api/create-food", h.protect(h.createFood)).Methods("POST")
	r.Handle("/api/update-food/{id}", h.protect(h.updateFood)).Methods("PUT")
	r.Handle("/api/delete-food", h.protect(h.deleteFood)).Methods("POST")

	if h.UploadDir != "" {
		r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.UploadDir))))
	}
}

func (h *Handler) protect(fn http.HandlerFunc) http.Handler {
	if h.Auth == nil {
		return fn
	}
	return h.Auth.Protect(fn)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, pricing.ErrUnknownSize),
		errors.Is(err, pricing.ErrUnknownExtra),
		errors.Is(err, pricing.ErrNotAvailable):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrFoodNotFound),
		errors.Is(err, domain.ErrZoneNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCategoryInUse), errors.Is(err, domain.ErrDuplicateName):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("[menu-svc] %v", err)
		httpx.WriteError(w, status, "service unavailable")
		return
	}
	httpx.WriteError(w, status, err.Error())
}

func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, categories)
}

func (h *Handler) getFoodsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(mux.Vars(r)["categoryId"])
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, domain.ErrCategoryNotFound.Error())
		return
	}
	foods, err := h.Catalog.ListFoodsByCategory(r.Context(), categoryID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, foods)
}

func (h *Handler) getFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Catalog.ListFoods(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, foods)
}

func (h *Handler) getFood(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, domain.ErrFoodNotFound.Error())
		return
	}
	food, err := h.Catalog.GetFood(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, food)
}

func (h *Handler) getOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.Catalog.ListOptions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, options)
}

func (h *Handler) getDeliveryZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.Catalog.ListDeliveryZones(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, zones)
}

func (h *Handler) getDeliveryZone(w http.ResponseWriter, r *http.Request) {
	zone, err := h.Catalog.DeliveryZoneByCity(r.Context(), mux.Vars(r)["city"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, zone)
}

func (h *Handler) getExtras(w http.ResponseWriter, r *http.Request) {
	extras, err := h.Catalog.ListExtras(r.Context(), strings.TrimSpace(r.URL.Query().Get("category")))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, extras)
}

func (h *Handler) composeCartItem(w http.ResponseWriter, r *http.Request) {
	var req domain.ComposeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	item, err := h.Catalog.ComposeCartItem(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, domain.ComposeResponse{CartItem: item, LineTotal: item.LineTotal()})
}

const (
	maxImageBytes = 10 << 20
	// room for the other form fields and multipart framing
	maxFormOverhead = 512 << 10
	sniffLen        = 512
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	limit := int64(maxImageBytes + maxFormOverhead)
	if r.ContentLength > limit {
		httpx.WriteError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.WriteError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	cat := domain.Category{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}
	if raw := r.FormValue("options"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cat.Options); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid options: "+err.Error())
			return
		}
	}

	if file, header, err := r.FormFile("image"); err == nil {
		defer file.Close()
		if header.Size > maxImageBytes {
			httpx.WriteError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		head := make([]byte, sniffLen)
		n, err := io.ReadFull(file, head)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
			httpx.WriteError(w, http.StatusBadRequest, "Error retrieving the file")
			return
		}
		if !allowedImageTypes[http.DetectContentType(head[:n])] {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed")
			return
		}
		imageURL, err := h.saveUpload(io.MultiReader(bytes.NewReader(head[:n]), file), "category", header.Filename)
		if err != nil {
			log.Printf("[menu-svc] save upload: %v", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to save file")
			return
		}
		cat.ImageURL = imageURL
	} else if !errors.Is(err, http.ErrMissingFile) {
		httpx.WriteError(w, http.StatusBadRequest, "Error retrieving the file")
		return
	}

	if err := h.Admin.CreateCategory(r.Context(), &cat); err != nil {
		if cat.ImageURL != "" {
			h.removeUpload(cat.ImageURL)
		}
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, cat)
}

func (h *Handler) saveUpload(src io.Reader, prefix, original string) (string, error) {
	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixNano(), filepath.Base(original))
	path := filepath.Join(h.UploadDir, filename)
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return "/uploads/" + filename, nil
}

func (h *Handler) removeUpload(url string) {
	path := filepath.Join(h.UploadDir, filepath.Base(url))
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[menu-svc] remove upload %s: %v", path, err)
	}
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		CategoryID int `json:"categoryId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.CategoryID <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, "categoryId is required")
		return
	}
	if err := h.Admin.DeleteCategory(r.Context(), payload.CategoryID); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
}

func (h *Handler) createFood(w http.ResponseWriter, r *http.Request) {
	var in domain.FoodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	food, err := h.Admin.CreateFood(r.Context(), in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, food)
}

func (h *Handler) updateFood(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		httpx.WriteError(w, http.StatusNotFound, domain.ErrFoodNotFound.Error())
		return
	}
	var in domain.FoodInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	food, err := h.Admin.UpdateFood(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]interface{}{"message": "food updated", "food": food})
}

func (h *Handler) deleteFood(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FoodID int `json:"foodId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.FoodID <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, "foodId is required")
		return
	}
	if err := h.Admin.DeleteFood(r.Context(), payload.FoodID); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "food deleted"})
}
