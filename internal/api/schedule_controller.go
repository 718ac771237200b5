package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/alexanderramin/wbsimport/internal/repository"
	"github.com/alexanderramin/wbsimport/internal/service"
)

type ScheduleController struct {
	schedules service.ScheduleService
	logger    *logrus.Logger
}

func NewScheduleController(schedules service.ScheduleService, logger *logrus.Logger) *ScheduleController {
	return &ScheduleController{schedules: schedules, logger: logger}
}

func (c *ScheduleController) Register(r *mux.Router) {
	router := r.PathPrefix("/schedules").Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("/{public_id}", c.Get).Methods(http.MethodGet)
	router.HandleFunc("/{public_id}/wbs", c.Tree).Methods(http.MethodGet)
}

// List returns active schedules; ?all=true includes inactive ones.
func (c *ScheduleController) List(w http.ResponseWriter, r *http.Request) {
	all, _ := strconv.ParseBool(r.URL.Query().Get("all"))
	schedules, err := c.schedules.List(r.Context(), all)
	if err != nil {
		c.fail(w, err)
		return
	}
	out := make([]scheduleDTO, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, toScheduleDTO(s))
	}
	writeJSON(w, http.StatusOK, out)
}

func (c *ScheduleController) Get(w http.ResponseWriter, r *http.Request) {
	sch, err := c.schedules.GetByPublicID(r.Context(), mux.Vars(r)["public_id"])
	if err != nil {
		c.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleDTO(sch))
}

func (c *ScheduleController) Tree(w http.ResponseWriter, r *http.Request) {
	sch, roots, err := c.schedules.Tree(r.Context(), mux.Vars(r)["public_id"])
	if err != nil {
		c.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wbsTreeResponse{
		Schedule: toScheduleDTO(sch),
		WBS:      toWBSNodeDTOs(roots),
	})
}

func (c *ScheduleController) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, "schedule not found")
		return
	}
	c.logger.WithError(err).Error("schedule query failed")
	writeError(w, http.StatusInternalServerError, "internal error")
}
