package handler

import "hostelgate/internal/gate/models"

type RosterResponse struct {
	Residents []models.Resident `json:"residents"`
}

type LogsResponse struct {
	Logs []models.MovementLogEntry `json:"logs"`
}

type DestinationsResponse struct {
	Destinations []string `json:"destinations"`
}
