package domain

import "time"

// Session identifica um lote de upload de um período
type Session struct {
	ID          string        `json:"id"`
	PeriodStart time.Time     `json:"period_start"`
	PeriodEnd   time.Time     `json:"period_end"`
	UploadedAt  time.Time     `json:"uploaded_at"`
	Files       []SessionFile `json:"files"`
	Complete    bool          `json:"complete"`
}

// SessionFile descreve o arquivo enviado para uma dimensão
type SessionFile struct {
	Dimension  Dimension `json:"dimension"`
	FileName   string    `json:"file_name"`
	RowCount   int       `json:"row_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// MissingDimensions lista, na ordem canônica, as dimensões sem arquivo na sessão
func (s *Session) MissingDimensions() []Dimension {
	present := make(map[Dimension]struct{}, len(s.Files))
	for _, f := range s.Files {
		present[f.Dimension] = struct{}{}
	}

	missing := make([]Dimension, 0)
	for _, d := range CanonicalDimensions {
		if _, ok := present[d]; !ok {
			missing = append(missing, d)
		}
	}
	return missing
}
