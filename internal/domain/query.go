package domain

import (
	"github.com/go-playground/validator/v10"
)

// queryValidate valida os parâmetros das consultas de distribuição.
// Inicializado em init() com os validadores das enumerações.
var queryValidate *validator.Validate

func init() {
	queryValidate = validator.New()

	_ = queryValidate.RegisterValidation("dimension", func(fl validator.FieldLevel) bool {
		return Dimension(fl.Field().String()).Valid()
	})
	_ = queryValidate.RegisterValidation("aggregation_level", func(fl validator.FieldLevel) bool {
		return AggregationLevel(fl.Field().String()).Valid()
	})
	_ = queryValidate.RegisterValidation("parent_level", func(fl validator.FieldLevel) bool {
		return AggregationLevel(fl.Field().String()).HasChildLevel()
	})
	_ = queryValidate.RegisterValidation("metric", func(fl validator.FieldLevel) bool {
		return Metric(fl.Field().String()).Valid()
	})
}

// DistributionQuery são os parâmetros da consulta de distribuição plana
type DistributionQuery struct {
	SessionIDs     []string         `json:"session_ids" validate:"required,min=1,dive,required"`
	Dimension      Dimension        `json:"dimension" validate:"dimension"`
	Level          AggregationLevel `json:"level" validate:"aggregation_level"`
	Metric         Metric           `json:"metric" validate:"metric"`
	ExcludeUnknown bool             `json:"exclude_unknown"`
}

func (q *DistributionQuery) Validate() error {
	return queryValidate.Struct(q)
}

// DrilldownQuery restringe a distribuição a um valor pai e reagrega no nível filho
type DrilldownQuery struct {
	SessionIDs     []string         `json:"session_ids" validate:"required,min=1,dive,required"`
	Dimension      Dimension        `json:"dimension" validate:"dimension"`
	ParentLevel    AggregationLevel `json:"parent_level" validate:"parent_level"`
	ParentValue    string           `json:"parent_value" validate:"required"`
	Metric         Metric           `json:"metric" validate:"metric"`
	ExcludeUnknown bool             `json:"exclude_unknown"`
}

func (q *DrilldownQuery) Validate() error {
	return queryValidate.Struct(q)
}

// IntegratedQuery calcula todas as dimensões canônicas para uma única categoria ou produto
type IntegratedQuery struct {
	SessionIDs     []string         `json:"session_ids" validate:"required,min=1,dive,required"`
	Level          AggregationLevel `json:"level" validate:"aggregation_level"`
	Value          string           `json:"value" validate:"required"`
	Metric         Metric           `json:"metric" validate:"metric"`
	ExcludeUnknown bool             `json:"exclude_unknown"`
}

func (q *IntegratedQuery) Validate() error {
	return queryValidate.Struct(q)
}

// GroupsQuery lista as chaves de agrupamento disponíveis num escopo de sessões
type GroupsQuery struct {
	SessionIDs []string         `json:"session_ids" validate:"required,min=1,dive,required"`
	Dimension  Dimension        `json:"dimension" validate:"dimension"`
	Level      AggregationLevel `json:"level" validate:"aggregation_level"`
}

func (q *GroupsQuery) Validate() error {
	return queryValidate.Struct(q)
}
