package record

import (
	"time"

	domrec "github.com/lexidex/lexidex/internal/domain/record"
)

// recordDTO is the stored JSON shape of a record.
type recordDTO struct {
	ID         string            `json:"id"`
	Value      string            `json:"value"`
	Properties domrec.Properties `json:"properties"`
	CreatedAt  int64             `json:"created_at"` // unix milliseconds
}

func toDTO(rec *domrec.Record) recordDTO {
	return recordDTO{
		ID:         rec.ID(),
		Value:      rec.Value(),
		Properties: rec.Properties(),
		CreatedAt:  rec.CreatedAt().UnixMilli(),
	}
}

func fromDTO(dto recordDTO) domrec.Record {
	return domrec.Reconstruct(
		dto.ID, dto.Value, dto.Properties,
		time.UnixMilli(dto.CreatedAt).UTC(),
	)
}
