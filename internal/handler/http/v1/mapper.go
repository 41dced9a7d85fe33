package v1

import (
	"github.com/shenikar/citizen_watch/internal/feed"
	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/shenikar/citizen_watch/internal/noticeboard"
	"github.com/shenikar/citizen_watch/internal/service"
)

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	resp := &IncidentResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Location:    LocationResponse{Address: model.Location.Address},
		CreatedAt:   model.CreatedAt,
		Media:       make([]MediaResponse, len(model.Media)),
		Status:      string(model.Status),
		Severity:    string(model.Severity),
		Category:    string(model.Category),
		ReportedBy:  model.ReportedBy,
		Anonymous:   model.Anonymous(),
		Tags:        model.Tags,
	}
	if c := model.Location.Coordinates; c != nil {
		lat, lng := c.Lat, c.Lng
		resp.Location.Lat, resp.Location.Lng = &lat, &lng
	}
	for i, m := range model.Media {
		resp.Media[i] = MediaResponse{Type: string(m.Type), URL: m.URL, Thumbnail: m.Thumbnail}
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	return resp
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func PageToResponse(page *models.Page) *PageResponse {
	return &PageResponse{
		Incidents:  ModelsToIncidentResponses(page.Incidents),
		NextCursor: string(page.NextCursor),
	}
}

func StateToResponse(sessionID string, state feed.State) *FeedStateResponse {
	return &FeedStateResponse{
		SessionID: sessionID,
		Incidents: ModelsToIncidentResponses(state.Items),
		IsLoading: state.IsLoading,
		HasMore:   state.HasMore,
	}
}

func BoardToResponse(result noticeboard.Result, districts []string) *BoardResponse {
	return &BoardResponse{
		Incidents: ModelsToIncidentResponses(result.Incidents),
		Counts: CountsResponse{
			Total:        result.Counts.Total,
			Pending:      result.Counts.Pending,
			HighPriority: result.Counts.HighPriority,
			Recent:       result.Counts.Recent,
		},
		Districts: districts,
	}
}

func StatsToResponse(stats noticeboard.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		Total:         stats.Total,
		Pending:       stats.Pending,
		UnderReview:   stats.UnderReview,
		Investigating: stats.Investigating,
		Resolved:      stats.Resolved,
		Dismissed:     stats.Dismissed,
		HighPriority:  stats.HighPriority,
	}
}

func SessionToLoginResponse(session *service.OfficerSession) *OfficerLoginResponse {
	o := session.Officer
	return &OfficerLoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Officer: OfficerResponse{
			UID:         o.UID,
			BadgeNumber: o.BadgeNumber,
			Name:        o.Name,
			DisplayName: o.DisplayName,
			Rank:        o.Rank,
			Station:     o.Station,
			District:    o.District,
		},
	}
}

func BulkToResponse(result *service.BulkResult) *BulkStatusResponse {
	resp := &BulkStatusResponse{Updated: ModelsToIncidentResponses(result.Updated)}
	if len(result.Failed) > 0 {
		resp.Failed = make(map[string]string, len(result.Failed))
		for id, err := range result.Failed {
			resp.Failed[id] = errorMessage(err)
		}
	}
	return resp
}
