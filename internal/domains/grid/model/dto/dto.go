package dto

import (
	"atoll/internal/domains/grid/model"
)

type GridResponse struct {
	model.Grid
	Previous string `json:"previous"`
	Next     string `json:"next"`
}
