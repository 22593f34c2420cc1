package mapper

import (
	"availability-api/modules/event/dto"
	"availability-api/modules/event/entity"
)

func ToEventResponse(event *entity.Event, members []entity.Membership, shareURL string) *dto.EventResponse {
	response := &dto.EventResponse{
		ID:             event.ID.String(),
		Name:           event.Name,
		Type:           event.Type,
		MaxUnavailable: event.MaxUnavailable,
		ShareSlug:      event.ShareSlug,
		ShareURL:       shareURL,
		CreatedAt:      event.CreatedAt,
	}

	for _, m := range members {
		response.Members = append(response.Members, dto.MemberResponse{
			UserID:   m.UserID.String(),
			Required: m.Required,
		})
	}

	return response
}
