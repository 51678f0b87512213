package services

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	dbm "globetrotter/internal/models/db_models"
	resp "globetrotter/internal/models/response_models"
)

func toSectionResponse(s dbm.Section) resp.SectionResponse {
	return resp.SectionResponse{
		ID:          s.ID.String(),
		TripID:      s.TripID.String(),
		Name:        s.Name,
		Description: s.Description,
		Budget:      s.Budget,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		Activities: lo.Map(s.Activities, func(a dbm.SectionActivity, _ int) resp.SectionActivityResponse {
			return resp.SectionActivityResponse{ActivityID: uuidPtrString(a.ActivityID)}
		}),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toSectionResponses(sections []dbm.Section) []resp.SectionResponse {
	return lo.Map(sections, func(s dbm.Section, _ int) resp.SectionResponse {
		return toSectionResponse(s)
	})
}

func toActivityResponse(a dbm.Activity) resp.ActivityResponse {
	images := []string(a.Images)
	if images == nil {
		images = []string{}
	}
	return resp.ActivityResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Description: a.Description,
		CityID:      a.CityID.String(),
		Category:    a.Category,
		Cost:        a.Cost,
		Duration:    a.Duration,
		Images:      images,
	}
}

func toActivityResponses(activities []dbm.Activity) []resp.ActivityResponse {
	return lo.Map(activities, func(a dbm.Activity, _ int) resp.ActivityResponse {
		return toActivityResponse(a)
	})
}

func toCityResponse(c dbm.City) resp.CityResponse {
	images := []string(c.Images)
	if images == nil {
		images = []string{}
	}
	return resp.CityResponse{
		ID:              c.ID.String(),
		Name:            c.Name,
		Country:         c.Country,
		CostIndex:       c.CostIndex,
		PopularityScore: c.PopularityScore,
		Description:     c.Description,
		Images:          images,
	}
}

func toCityResponses(cities []dbm.City) []resp.CityResponse {
	return lo.Map(cities, func(c dbm.City, _ int) resp.CityResponse {
		return toCityResponse(c)
	})
}

func toAccountResponse(a dbm.Account) resp.AccountResponse {
	return resp.AccountResponse{
		ID:        a.ID.String(),
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		City:      a.City,
		Country:   a.Country,
		AvatarURL: a.AvatarURL,
		Role:      a.Role,
	}
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
