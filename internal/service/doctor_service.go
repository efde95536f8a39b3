package service

import (
	"context"
	"fmt"
	"time"

	"telehealth-be/internal/dto"
	"telehealth-be/internal/entity"
	"telehealth-be/internal/repository/unitofwork"

	gocache "github.com/patrickmn/go-cache"
)

const doctorDirectoryTTL = 5 * time.Minute

type IDoctorService interface {
	ListDoctors(ctx context.Context, specialty, nameQuery string) ([]*dto.DoctorListItemResponse, error)
}

type doctorService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewDoctorService(uowFactory unitofwork.RepositoryFactory, directoryCache *gocache.Cache) IDoctorService {
	return &doctorService{
		uowFactory: uowFactory,
		cache:      directoryCache,
	}
}

func listingsToResponses(listings []*entity.DoctorListing) []*dto.DoctorListItemResponse {
	responses := make([]*dto.DoctorListItemResponse, len(listings))
	for i, l := range listings {
		responses[i] = &dto.DoctorListItemResponse{
			UserId:            l.UserId,
			FullName:          l.FullName,
			Specialty:         l.Specialty,
			Qualifications:    l.Qualifications,
			YearsOfExperience: l.YearsOfExperience,
			Bio:               l.Bio,
			ConsultationFee:   l.ConsultationFee,
			Availability:      l.Availability,
		}
	}
	return responses
}

func (s *doctorService) ListDoctors(ctx context.Context, specialty, nameQuery string) ([]*dto.DoctorListItemResponse, error) {
	cacheKey := fmt.Sprintf("doctors:%s:%s", specialty, nameQuery)

	if s.cache != nil {
		if cached, found := s.cache.Get(cacheKey); found {
			if responses, ok := cached.([]*dto.DoctorListItemResponse); ok {
				return responses, nil
			}
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	listings, err := uow.DoctorProfileRepository().FindListings(ctx, specialty, nameQuery)
	if err != nil {
		return nil, err
	}

	responses := listingsToResponses(listings)
	if s.cache != nil {
		s.cache.Set(cacheKey, responses, doctorDirectoryTTL)
	}
	return responses, nil
}
