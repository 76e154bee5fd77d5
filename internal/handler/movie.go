package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kleberlz17/locadora-api/internal/model"
	"github.com/kleberlz17/locadora-api/internal/service"
)

// MovieHandler exposes the movie catalog endpoints.
type MovieHandler struct {
	Movies *service.MovieService
}

// NewMovieHandler constructs a MovieHandler.
func NewMovieHandler(movies *service.MovieService) *MovieHandler {
	if movies == nil {
		panic("nil service passed to NewMovieHandler")
	}
	return &MovieHandler{Movies: movies}
}

type createMovieRequest struct {
	Title       string     `json:"title" validate:"required"`
	ReleaseDate model.Date `json:"release_date"`
	Director    string     `json:"director" validate:"required"`
	Genre       string     `json:"genre" validate:"required"`
	Stock       int64      `json:"stock" validate:"gte=0"`
}

// Create handles POST /movies.
func (h *MovieHandler) Create(c echo.Context) error {
	var req createMovieRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.ReleaseDate.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "release_date is required"})
	}
	movie := &model.Movie{
		Title:       req.Title,
		ReleaseDate: req.ReleaseDate,
		Director:    req.Director,
		Genre:       req.Genre,
		Stock:       req.Stock,
	}
	created, err := h.Movies.Create(c.Request().Context(), movie)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": created.ID})
}

// GetByID handles GET /movies/:id.
func (h *MovieHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	movie, err := h.Movies.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, movie)
}

// listOr404 writes the movie list or a 404 when it is empty.
func listOr404(c echo.Context, movies []model.Movie, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	if len(movies) == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no movie found"})
	}
	return c.JSON(http.StatusOK, movies)
}

// SearchByTitle handles GET /movies/title/:title.
func (h *MovieHandler) SearchByTitle(c echo.Context) error {
	movies, err := h.Movies.SearchByTitle(c.Request().Context(), c.Param("title"))
	return listOr404(c, movies, err)
}

// ListByReleaseDate handles GET /movies/releaseDate/:date.
func (h *MovieHandler) ListByReleaseDate(c echo.Context) error {
	date, err := model.ParseDate(c.Param("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid release date, expected YYYY-MM-DD"})
	}
	movies, err := h.Movies.ListByReleaseDate(c.Request().Context(), date)
	return listOr404(c, movies, err)
}

// SearchByDirector handles GET /movies/director/:director.
func (h *MovieHandler) SearchByDirector(c echo.Context) error {
	movies, err := h.Movies.SearchByDirector(c.Request().Context(), c.Param("director"))
	return listOr404(c, movies, err)
}

// SearchByGenre handles GET /movies/genre/:genre.
func (h *MovieHandler) SearchByGenre(c echo.Context) error {
	movies, err := h.Movies.SearchByGenre(c.Request().Context(), c.Param("genre"))
	return listOr404(c, movies, err)
}

// SetStock handles PUT /movies/:id/stock.
func (h *MovieHandler) SetStock(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		Stock int64 `json:"stock"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	movie, err := h.Movies.SetStock(c.Request().Context(), id, body.Stock)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, movie)
}

// SetReleaseDate handles PUT /movies/:id/releaseDate.
func (h *MovieHandler) SetReleaseDate(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		ReleaseDate model.Date `json:"release_date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	movie, err := h.Movies.SetReleaseDate(c.Request().Context(), id, body.ReleaseDate)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, movie)
}

// SetTitle handles PUT /movies/:id/title.
func (h *MovieHandler) SetTitle(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var body struct {
		Title string `json:"title"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	movie, err := h.Movies.SetTitle(c.Request().Context(), id, body.Title)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, movie)
}

// Delete handles DELETE /movies/:id.
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Movies.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
