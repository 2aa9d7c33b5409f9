// internal/mapper/mapper.go
package mapper

import (
	"strings"
	"time"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/dto"
)

const dateLayout = "2006-01-02"

func ToSeller(in dto.SellerRequest, passwordHash string, now time.Time) *domain.Seller {
	categories := make([]string, 0, len(in.Categories))
	for _, c := range in.Categories {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	return &domain.Seller{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Password:     passwordHash,
		Document:     in.Document,
		Phone:        in.Phone,
		Address:      in.Address,
		Number:       in.Number,
		PostalCode:   in.PostalCode,
		City:         in.City,
		WeekdayHours: domain.OperatingHours{Start: in.WeekdayStart, End: in.WeekdayEnd},
		WeekendHours: domain.OperatingHours{Start: in.WeekendStart, End: in.WeekendEnd},
		Categories:   categories,
		ImageURL:     in.ImageURL,
		CreatedAt:    now,
	}
}

func ToSellerResponse(s *domain.Seller) dto.SellerResponse {
	return dto.SellerResponse{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		Document:     s.Document,
		Phone:        s.Phone,
		Address:      s.Address,
		Number:       s.Number,
		PostalCode:   s.PostalCode,
		City:         s.City,
		WeekdayStart: s.WeekdayHours.Start,
		WeekdayEnd:   s.WeekdayHours.End,
		WeekendStart: s.WeekendHours.Start,
		WeekendEnd:   s.WeekendHours.End,
		Categories:   s.Categories,
		ImageURL:     s.ImageURL,
		CreatedAt:    s.CreatedAt,
	}
}

func ToSellerResponses(sellers []*domain.Seller) []dto.SellerResponse {
	out := make([]dto.SellerResponse, 0, len(sellers))
	for _, s := range sellers {
		out = append(out, ToSellerResponse(s))
	}
	return out
}

// ToUser fails with InvalidInput when the birth date is set but not YYYY-MM-DD.
func ToUser(in dto.UserRequest, passwordHash string, now time.Time) (*domain.User, error) {
	var birth time.Time
	if strings.TrimSpace(in.BirthDate) != "" {
		var err error
		birth, err = time.Parse(dateLayout, in.BirthDate)
		if err != nil {
			return nil, domain.InvalidInput("Data de nascimento inválida, formato esperado AAAA-MM-DD")
		}
	}
	return &domain.User{
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		Password:   passwordHash,
		Document:   in.Document,
		Phone:      in.Phone,
		Address:    in.Address,
		Number:     in.Number,
		PostalCode: in.PostalCode,
		City:       in.City,
		BirthDate:  birth,
		PetType:    in.PetType,
		CityZone:   in.CityZone,
		CreatedAt:  now,
	}, nil
}

func ToUserResponse(u *domain.User) dto.UserResponse {
	out := dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Document:   u.Document,
		Phone:      u.Phone,
		Address:    u.Address,
		Number:     u.Number,
		PostalCode: u.PostalCode,
		City:       u.City,
		PetType:    u.PetType,
		CityZone:   u.CityZone,
		CreatedAt:  u.CreatedAt,
	}
	if !u.BirthDate.IsZero() {
		out.BirthDate = u.BirthDate.Format(dateLayout)
	}
	return out
}
