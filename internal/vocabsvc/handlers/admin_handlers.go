package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// AdminStats returns the session analytics aggregates.
// GET /v1/admin/stats
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GetAdminStats(r.Context())
	if err != nil {
		log.Errorf("Error [StatsService.GetAdminStats] %s", err)
		h.errorResponse(w, http.StatusInternalServerError, err)
		return
	}
	h.CreateResponse(w, Response{Code: http.StatusOK, Data: stats})
}

// ExportCSV streams session and answer data as a CSV download.
// GET /v1/admin/export/csv
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := h.stats.GetExportRows(r.Context())
	if err != nil {
		log.Errorf("Error [StatsService.GetExportRows] %s", err)
		h.errorResponse(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=learning_data.csv")

	cw := csv.NewWriter(w)
	cw.Write([]string{"User ID", "Start Time", "End Time", "Total Questions",
		"Correct Answers", "Accuracy", "Word ID", "User Answer",
		"Is Correct", "Response Time (s)"})

	for _, row := range rows {
		endTime := ""
		if row.EndTime != nil {
			endTime = row.EndTime.UTC().Format(time.RFC3339)
		}
		wordID, userAnswer, correct, responseTime := "", "", "", ""
		if row.WordID != nil {
			wordID = strconv.FormatInt(*row.WordID, 10)
		}
		if row.UserAnswer != nil {
			userAnswer = *row.UserAnswer
		}
		if row.Correct != nil {
			correct = strconv.FormatBool(*row.Correct)
		}
		if row.ResponseTime != nil {
			responseTime = fmt.Sprintf("%.2f", *row.ResponseTime)
		}
		cw.Write([]string{
			strconv.FormatInt(row.UserID, 10),
			row.StartTime.UTC().Format(time.RFC3339),
			endTime,
			strconv.Itoa(row.TotalQuestions),
			strconv.Itoa(row.CorrectAnswers),
			fmt.Sprintf("%.1f", row.AccuracyRate),
			wordID,
			userAnswer,
			correct,
			responseTime,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Errorf("Error writing csv export %s", err)
	}
}
