package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/customer-profile-api/internal/domain"
	"github.com/vfg2006/customer-profile-api/internal/usecases/profiling"
	"github.com/vfg2006/customer-profile-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type distributionResponse struct {
	Dimension domain.Dimension             `json:"dimension"`
	Level     domain.AggregationLevel      `json:"level"`
	Metric    domain.Metric                `json:"metric"`
	Groups    []domain.CategoryGroupResult `json:"groups"`
}

type integratedResponse struct {
	Level      domain.AggregationLevel            `json:"level"`
	Value      string                             `json:"value"`
	Metric     domain.Metric                      `json:"metric"`
	Dimensions []domain.IntegratedDimensionResult `json:"dimensions"`
}

// ListDimensions retorna as dimensões canônicas na ordem da visão integrada
func ListDimensions(service profiling.Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"dimensions": service.Dimensions()})
	}
}

// ListSessions lista as sessões informadas em session_id, ou todas quando ausente
func ListSessions(service profiling.Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - ListSessions")

		sessions, err := service.ListSessions(r.Context(), sessionIDsFromQuery(r.URL.Query()))
		if err != nil {
			writeProfilingError(w, err)
			return
		}

		writeJSON(w, sessions)
	}
}

// ListCategories retorna a hierarquia de categorias conhecida
func ListCategories(service profiling.Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - ListCategories")

		paths, err := service.CategoryHierarchy(r.Context())
		if err != nil {
			writeProfilingError(w, err)
			return
		}

		writeJSON(w, paths)
	}
}

// ListGroups lista as chaves de agrupamento disponíveis para as sessões
func ListGroups(service profiling.Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - ListGroups")

		params := r.URL.Query()
		query := domain.GroupsQuery{
			SessionIDs: sessionIDsFromQuery(params),
			Dimension:  domain.Dimension(params.Get("dimension")),
			Level:      levelParam(params, "level"),
		}

		groups, err := service.AvailableGroups(r.Context(), query)
		if err != nil {
			writeProfilingError(w, err)
			return
		}

		writeJSON(w, map[string]any{"level": query.Level, "groups": groups})
	}
}

// GetDistribution calcula a distribuição plana de uma dimensão
func GetDistribution(service profiling.Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - GetDistribution")

		params := r.URL.Query()
		excludeUnknown, ok := excludeUnknownParam(w, params)
		if !ok {
			return
		}

		query := domain.DistributionQuery{
			SessionIDs:     sessionIDsFromQuery(params),
			Dimension:      domain.Dimension(params.Get("dimension")),
			Level:          levelParam(params, "level"),
			Metric:         metricParam(params),
			ExcludeUnknown: excludeUnknown,
		}

		groups, err := service.Distribution(r.Context(), query)
		if err != nil {
			writeProfilingError(w, err)
			return
		}

		writeJSON(w, distributionResponse{
			Dimension: query.Dimension,
			Level:     query.Level,
			Metric:    query.Metric,
			Groups:    groups,
		})
	}
}

// GetDrilldown restringe a distribuição a um valor pai e reagrega no nível filho
func GetDrilldown(service profiling.Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - GetDrilldown")

		params := r.URL.Query()
		excludeUnknown, ok := excludeUnknownParam(w, params)
		if !ok {
			return
		}

		query := domain.DrilldownQuery{
			SessionIDs:     sessionIDsFromQuery(params),
			Dimension:      domain.Dimension(params.Get("dimension")),
			ParentLevel:    levelParam(params, "parent_level"),
			ParentValue:    params.Get("parent_value"),
			Metric:         metricParam(params),
			ExcludeUnknown: excludeUnknown,
		}

		result, err := service.Drilldown(r.Context(), query)
		if err != nil {
			writeProfilingError(w, err)
			return
		}

		writeJSON(w, result)
	}
}

// GetIntegratedView calcula todas as dimensões para uma categoria ou produto
func GetIntegratedView(service profiling.Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - GetIntegratedView")

		params := r.URL.Query()
		excludeUnknown, ok := excludeUnknownParam(w, params)
		if !ok {
			return
		}

		query := domain.IntegratedQuery{
			SessionIDs:     sessionIDsFromQuery(params),
			Level:          levelParam(params, "level"),
			Value:          params.Get("value"),
			Metric:         metricParam(params),
			ExcludeUnknown: excludeUnknown,
		}

		dimensions, err := service.IntegratedView(r.Context(), query)
		if err != nil {
			writeProfilingError(w, err)
			return
		}

		writeJSON(w, integratedResponse{
			Level:      query.Level,
			Value:      query.Value,
			Metric:     query.Metric,
			Dimensions: dimensions,
		})
	}
}

// sessionIDsFromQuery aceita session_id repetido ou separado por vírgula
func sessionIDsFromQuery(params url.Values) []string {
	var sessionIDs []string
	for _, raw := range params["session_id"] {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				sessionIDs = append(sessionIDs, id)
			}
		}
	}
	return sessionIDs
}

// levelParam usa o nível padrão apenas quando o parâmetro está ausente.
// Um valor presente e desconhecido segue adiante e é rejeitado pelo serviço.
func levelParam(params url.Values, key string) domain.AggregationLevel {
	if !params.Has(key) {
		return domain.DefaultAggregationLevel
	}
	return domain.AggregationLevel(params.Get(key))
}

func metricParam(params url.Values) domain.Metric {
	if !params.Has("metric") {
		return domain.DefaultMetric
	}
	return domain.Metric(params.Get("metric"))
}

func excludeUnknownParam(w http.ResponseWriter, params url.Values) (bool, bool) {
	raw := params.Get("exclude_unknown")
	if raw == "" {
		return false, true
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro exclude_unknown inválido", map[string]string{"exclude_unknown": raw})
		return false, false
	}
	return value, true
}

func writeJSON(w http.ResponseWriter, payload any) {
	writeJSONStatus(w, http.StatusOK, payload)
}

func writeJSONStatus(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta")
	}
}

// writeProfilingError traduz os erros do serviço de perfil para a resposta da API
func writeProfilingError(w http.ResponseWriter, err error) {
	var profilingErr *profiling.ProfilingError
	if errors.As(err, &profilingErr) {
		var details any
		if profilingErr.Details != "" {
			details = profilingErr.Details
		}
		apiErrors.WriteError(w, profilingErr.Code, profilingErr.Err.Error(), details)
		return
	}

	logrus.WithError(err).Error("Erro inesperado no serviço de perfil")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}
