package holiday

import (
	"context"
	"time"

	"github.com/UserShri98/employee-system/internal/domain/holiday"
	"github.com/UserShri98/employee-system/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	holidayType := holiday.TypeNational
	if req.Type != nil {
		holidayType = holiday.Type(*req.Type)
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Date:        date,
		Type:        holidayType,
		Description: req.Description,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.ToResponse(created), nil
}

func (s *HolidayServiceImpl) Get(ctx context.Context, id string) (holiday.HolidayResponse, error) {
	h, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.ToResponse(h), nil
}

func (s *HolidayServiceImpl) List(ctx context.Context, year *int) ([]holiday.HolidayResponse, error) {
	var holidays []holiday.Holiday
	var err error

	if year != nil {
		from := time.Date(*year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(*year, time.December, 31, 0, 0, 0, 0, time.UTC)
		holidays, err = s.holidayRepo.ListByDateRange(ctx, from, to)
	} else {
		holidays, err = s.holidayRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return holiday.ToResponses(holidays), nil
}

func (s *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	updated, err := s.holidayRepo.Update(ctx, req)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.ToResponse(updated), nil
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}
