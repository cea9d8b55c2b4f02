// Package scheduler contém os serviços agendados de manutenção dos dados de perfil
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-profile-api/infrastructure/repository"
	"github.com/vfg2006/customer-profile-api/internal/config"
	"github.com/vfg2006/customer-profile-api/internal/domain"
	"github.com/vfg2006/customer-profile-api/internal/usecases/profiling"
)

type ResolutionAuditConfig struct {
	CronSchedule    string
	SessionLookback int
	Enabled         bool
}

// ResolutionAuditService audita periodicamente as sessões mais recentes em busca
// de registros cujo produto ou categoria não existe mais
type ResolutionAuditService struct {
	scheduler           *gocron.Scheduler
	sessionRepo         repository.SessionRepository
	auditor             profiling.Auditor
	config              ResolutionAuditConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastUnresolved      map[string]int
}

func NewResolutionAuditService(
	sessionRepo repository.SessionRepository,
	auditor profiling.Auditor,
	cfg *config.Config,
) *ResolutionAuditService {
	auditConfig := ResolutionAuditConfig{
		CronSchedule:    cfg.ResolutionAudit.CronSchedule,    // Default: 2h da manhã todos os dias
		SessionLookback: cfg.ResolutionAudit.SessionLookback, // Default: 5 sessões
		Enabled:         cfg.ResolutionAudit.Enabled,         // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":    auditConfig.CronSchedule,
		"session_lookback": auditConfig.SessionLookback,
	}).Info("Configuração do agendador de auditoria de referências carregada")

	return &ResolutionAuditService{
		scheduler:      gocron.NewScheduler(time.Local),
		sessionRepo:    sessionRepo,
		auditor:        auditor,
		config:         auditConfig,
		lastUnresolved: make(map[string]int),
	}
}

func (s *ResolutionAuditService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de auditoria de referências desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de auditoria de referências")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunAudit(ctx); err != nil {
			logrus.WithError(err).Error("Erro na auditoria de referências")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auditoria de referências: %w", err)
	}

	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de auditoria de referências")
		s.scheduler.Stop()
	}()

	return nil
}

// RunAudit audita as sessões mais recentes. Uma sessão com falha é registrada
// no log e não interrompe as demais. Retorna nil quando já há uma execução em andamento.
func (s *ResolutionAuditService) RunAudit(ctx context.Context) ([]*domain.ResolutionAudit, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Auditoria de referências já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	sessions, err := s.sessionRepo.ListSessions(ctx, s.config.SessionLookback)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar sessões para auditoria: %w", err)
	}

	if len(sessions) == 0 {
		logrus.Info("Nenhuma sessão encontrada para auditoria de referências")
		return []*domain.ResolutionAudit{}, nil
	}

	audits := make([]*domain.ResolutionAudit, 0, len(sessions))
	unresolved := make(map[string]int, len(sessions))
	for _, session := range sessions {
		audit, err := s.auditor.AuditSession(ctx, session.ID)
		if err != nil {
			logrus.WithError(err).WithField("session_id", session.ID).Error("Erro ao auditar sessão")
			continue
		}

		audits = append(audits, audit)
		unresolved[session.ID] = audit.Unresolved()

		entry := logrus.WithFields(logrus.Fields{
			"session_id": session.ID,
			"unresolved": audit.Unresolved(),
		})
		if audit.Unresolved() > 0 {
			entry.Warn("Sessão com registros não resolvidos")
		} else {
			entry.Info("Sessão auditada sem registros não resolvidos")
		}
	}

	s.syncMutex.Lock()
	s.lastUnresolved = unresolved
	s.syncMutex.Unlock()

	logrus.WithField("sessions", len(audits)).Info("Auditoria de referências concluída")

	return audits, nil
}

// TriggerManualSync inicia manualmente uma auditoria de referências
func (s *ResolutionAuditService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Auditoria de referências já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando auditoria manual de referências")
	go func() {
		if _, err := s.RunAudit(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na auditoria manual de referências")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ResolutionAuditService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	unresolved := make(map[string]int, len(s.lastUnresolved))
	for sessionID, count := range s.lastUnresolved {
		unresolved[sessionID] = count
	}

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_session_lookback":  s.config.SessionLookback,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_unresolved":        unresolved,
	}
}
