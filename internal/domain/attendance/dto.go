package attendance

import "time"

type AttendanceResponse struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user"`
	UserName   *string  `json:"userName,omitempty"`
	Date       string   `json:"date"`
	CheckIn    *string  `json:"checkIn,omitempty"`
	CheckOut   *string  `json:"checkOut,omitempty"`
	TotalHours *float64 `json:"totalHours,omitempty"`
	Status     string   `json:"status"`
}

type PunchResponse struct {
	Message string             `json:"message"`
	Record  AttendanceResponse `json:"record"`
}

// ListFilter narrows attendance queries. Month and Year go together;
// a month filter without a year is ignored.
type ListFilter struct {
	UserID *string
	Month  *int
	Year   *int
}

func ToResponse(a Attendance) AttendanceResponse {
	var checkIn, checkOut *string
	if a.CheckIn != nil {
		str := a.CheckIn.Format(time.RFC3339)
		checkIn = &str
	}
	if a.CheckOut != nil {
		str := a.CheckOut.Format(time.RFC3339)
		checkOut = &str
	}

	return AttendanceResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		UserName:   a.UserName,
		Date:       a.Date.Format("2006-01-02"),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalHours: a.TotalHours,
		Status:     string(a.Status),
	}
}

func ToResponses(records []Attendance) []AttendanceResponse {
	result := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		result = append(result, ToResponse(a))
	}
	return result
}
