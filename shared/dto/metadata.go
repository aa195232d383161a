package dto

import (
	"atoll/shared/constant"
	"atoll/shared/model"
	"atoll/shared/timezone"
)

// Metadata is the audit trail echoed with every entity. The modified pair is left out until something changes.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt string `json:"modified_at,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	m.CreatedBy = model.CreatedBy

	if model.ModifiedAt.After(model.CreatedAt) {
		m.ModifiedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
		m.ModifiedBy = model.ModifiedBy
	}
}
