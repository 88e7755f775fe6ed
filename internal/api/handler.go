package api

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"job-board/internal/board"
	"job-board/internal/errors"
	"job-board/internal/jobcard"
	"job-board/internal/logger"
	"job-board/internal/models"
)

type JobStore interface {
	All() []models.Job
	Get(id string) (models.Job, error)
}

type SavedStore interface {
	Toggle(id string) bool
	Has(id string) bool
	Len() int
}

type Options struct {
	Title      string
	ShowSalary bool
	// OnApply receives quick-apply requests. Cards render without the
	// apply control when it is nil.
	OnApply jobcard.Callback
}

type Handler struct {
	jobs     JobStore
	saved    SavedStore
	renderer *jobcard.Renderer
	opts     Options
	now      func() time.Time
}

func NewHandler(jobs JobStore, saved SavedStore, renderer *jobcard.Renderer, opts Options) *Handler {
	return &Handler{
		jobs:     jobs,
		saved:    saved,
		renderer: renderer,
		opts:     opts,
		now:      time.Now,
	}
}

// RegisterRoutes mounts the JSON API, the HTML board and the card actions.
// actionMiddleware runs in front of the POST routes only.
func (h *Handler) RegisterRoutes(r gin.IRouter, actionMiddleware ...gin.HandlerFunc) {
	r.GET("/api/jobs", h.GetJobs)
	r.GET("/api/jobs/:id", h.GetJob)

	r.GET("/jobs", h.Board)
	r.GET("/jobs/:id", h.Details)
	r.GET("/jobs/:id/card", h.Card)

	// OpenDetails stands for the clickable card container. It only runs
	// when an action lets the event propagate.
	apply := append(append([]gin.HandlerFunc{}, actionMiddleware...), h.Apply, h.OpenDetails)
	save := append(append([]gin.HandlerFunc{}, actionMiddleware...), h.Save, h.OpenDetails)
	r.POST("/jobs/:id/apply", apply...)
	r.POST("/jobs/:id/save", save...)
}

func (h *Handler) GetJobs(c *gin.Context) {
	c.JSON(http.StatusOK, h.jobs.All())
}

func (h *Handler) GetJob(c *gin.Context) {
	job, err := h.jobs.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *Handler) Board(c *gin.Context) {
	jobs := h.jobs.All()
	props := make([]jobcard.Props, 0, len(jobs))
	for _, job := range jobs {
		props = append(props, h.props(job))
	}
	h.writePage(c, h.opts.Title, props)
}

func (h *Handler) Details(c *gin.Context) {
	job, err := h.jobs.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.writePage(c, job.Title, []jobcard.Props{h.props(job)})
}

func (h *Handler) Card(c *gin.Context) {
	job, err := h.jobs.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(h.props(job)).WriteHTML(&buf); err != nil {
		h.fail(c, errors.Internal("rendering card", err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) Apply(c *gin.Context) {
	h.act(c, jobcard.HandleApply)
}

func (h *Handler) Save(c *gin.Context) {
	if h.act(c, jobcard.HandleSave) {
		c.Header("X-Job-Saved", strconv.FormatBool(h.saved.Has(c.Param("id"))))
	}
}

// OpenDetails is the card container's own click behavior.
func (h *Handler) OpenDetails(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, jobcard.DetailsPath(c.Param("id")))
}

// act hands the request to a card delegator. It reports whether the job
// existed.
func (h *Handler) act(c *gin.Context, handle func(jobcard.Props, jobcard.Event)) bool {
	job, err := h.jobs.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return false
	}

	e := &requestEvent{c: c}
	handle(h.props(job), e)
	if e.defaultPrevented {
		c.Status(http.StatusNoContent)
	}
	return true
}

func (h *Handler) props(job models.Job) jobcard.Props {
	p := jobcard.FromJob(job)
	p.IsSaved = h.saved.Has(job.ID)
	p.ShowSalary = h.opts.ShowSalary
	p.OnApply = h.opts.OnApply
	p.OnSave = func(id string) { h.saved.Toggle(id) }
	return p
}

func (h *Handler) writePage(c *gin.Context, title string, props []jobcard.Props) {
	page, err := board.BuildPage(h.renderer, title, h.now(), h.saved.Len(), props)
	if err != nil {
		h.fail(c, errors.Internal("building page", err))
		return
	}

	var buf bytes.Buffer
	if err := board.WritePage(&buf, page); err != nil {
		h.fail(c, errors.Internal("writing page", err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log := logger.Get()
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
