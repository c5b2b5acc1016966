package firestore

import (
	"elderguard/internal/domain/entity"
	"elderguard/internal/infra/persistence/model"
)

func fromMedicalLogDomain(log *entity.MedicalLog) *model.MedicalLogModel {
	return &model.MedicalLogModel{
		UserID:    log.UserID,
		Note:      log.Note,
		Author:    log.Author,
		Role:      log.Role.String(),
		CreatedAt: log.CreatedAt,
		UpdatedAt: log.UpdatedAt,
	}
}

func toMedicalLogDomain(id string, m *model.MedicalLogModel) *entity.MedicalLog {
	return &entity.MedicalLog{
		ID:        id,
		UserID:    m.UserID,
		Note:      m.Note,
		Author:    m.Author,
		Role:      entity.Role(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromAlertDomain(alert *entity.Alert) *model.AlertModel {
	return &model.AlertModel{
		UserID:         alert.UserID,
		Type:           string(alert.Type),
		Severity:       string(alert.Severity),
		Message:        alert.Message,
		Source:         string(alert.Source),
		Acknowledged:   alert.Acknowledged,
		AcknowledgedAt: alert.AcknowledgedAt,
		AcknowledgedBy: alert.AcknowledgedBy,
		CreatedAt:      alert.CreatedAt,
	}
}

func toAlertDomain(id string, m *model.AlertModel) *entity.Alert {
	return &entity.Alert{
		ID:             id,
		UserID:         m.UserID,
		Type:           entity.AlertType(m.Type),
		Severity:       entity.AlertSeverity(m.Severity),
		Message:        m.Message,
		Source:         entity.AlertSource(m.Source),
		Acknowledged:   m.Acknowledged,
		AcknowledgedAt: m.AcknowledgedAt,
		AcknowledgedBy: m.AcknowledgedBy,
		CreatedAt:      m.CreatedAt,
	}
}

func fromPostureDomain(status *entity.PostureStatus) *model.PostureModel {
	m := &model.PostureModel{
		UserID:  status.UserID,
		Action:  status.Action,
		Posture: status.Posture,
		Source:  string(status.Source),
	}
	if status.UpdatedAt != nil {
		m.UpdatedAt = *status.UpdatedAt
	}

	return m
}

func toPostureDomain(m *model.PostureModel) *entity.PostureStatus {
	updatedAt := m.UpdatedAt

	return &entity.PostureStatus{
		UserID:    m.UserID,
		Action:    m.Action,
		Posture:   m.Posture,
		Source:    entity.AlertSource(m.Source),
		UpdatedAt: &updatedAt,
	}
}

func fromProfileDomain(p *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		UID:             p.UID,
		Email:           p.Email,
		Role:            p.Role.String(),
		PostureTracking: p.PostureTracking,
		AlertDispatch:   p.AlertDispatch,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toProfileDomain(m *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		UID:             m.UID,
		Email:           m.Email,
		Role:            entity.RoleFromClaim(m.Role),
		PostureTracking: m.PostureTracking,
		AlertDispatch:   m.AlertDispatch,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
