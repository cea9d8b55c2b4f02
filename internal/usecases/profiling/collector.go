package profiling

import (
	"context"

	"github.com/vfg2006/customer-profile-api/infrastructure/repository"
	"github.com/vfg2006/customer-profile-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// RecordCollector reúne os registros de uma dimensão em um conjunto de sessões
type RecordCollector struct {
	records       repository.ProfileRecordRepository
	maxConcurrent int
	unknownValue  string
}

func NewRecordCollector(
	records repository.ProfileRecordRepository,
	maxConcurrent int,
	unknownValue string,
) *RecordCollector {
	if unknownValue == "" {
		unknownValue = domain.DefaultUnknownAttributeValue
	}

	return &RecordCollector{
		records:       records,
		maxConcurrent: maxConcurrent,
		unknownValue:  unknownValue,
	}
}

// Collect retorna a união dos registros das sessões para a dimensão. Sessões
// repetidas são lidas uma única vez e o resultado segue a ordem das sessões.
func (c *RecordCollector) Collect(
	ctx context.Context,
	sessionIDs []string,
	dimension domain.Dimension,
	excludeUnknown bool,
) ([]*domain.ProfileRecord, error) {
	sessions := uniqueSessionIDs(sessionIDs)
	perSession := make([][]*domain.ProfileRecord, len(sessions))

	g, gctx := errgroup.WithContext(ctx)
	if c.maxConcurrent > 0 {
		g.SetLimit(c.maxConcurrent)
	}

	for i, sessionID := range sessions {
		g.Go(func() error {
			records, err := c.records.ListBySessionAndDimension(gctx, sessionID, dimension)
			if err != nil {
				return err
			}
			perSession[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	size := 0
	for _, records := range perSession {
		size += len(records)
	}

	collected := make([]*domain.ProfileRecord, 0, size)
	for _, records := range perSession {
		for _, record := range records {
			if excludeUnknown && record.AttributeValue == c.unknownValue {
				continue
			}
			collected = append(collected, record)
		}
	}

	return collected, nil
}

func uniqueSessionIDs(sessionIDs []string) []string {
	seen := make(map[string]struct{}, len(sessionIDs))
	unique := make([]string, 0, len(sessionIDs))
	for _, id := range sessionIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
