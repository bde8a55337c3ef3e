package mongodb

import (
	"time"

	"petify-api/internal/domain/adoptions"
	"petify-api/internal/domain/campaigns"
	"petify-api/internal/domain/payments"
	"petify-api/internal/domain/pets"
	"petify-api/internal/domain/users"
	"petify-api/internal/platform/money"
	"petify-api/internal/ports/auth"
)

// Documentos persistidos. _id es el uuid del dominio (string), no ObjectID.

type userDoc struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Name      string    `bson:"name"`
	PhotoURL  string    `bson:"photoUrl"`
	Role      string    `bson:"role"`
	IsBanned  bool      `bson:"isBanned"`
	CreatedAt time.Time `bson:"createdAt"`
}

func toUserDoc(u users.User) userDoc {
	return userDoc{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      string(u.Role),
		IsBanned:  u.IsBanned,
		CreatedAt: u.CreatedAt,
	}
}

func (d userDoc) domain() users.User {
	return users.User{
		ID:        d.ID,
		Email:     d.Email,
		Name:      d.Name,
		PhotoURL:  d.PhotoURL,
		Role:      auth.Role(d.Role),
		IsBanned:  d.IsBanned,
		CreatedAt: d.CreatedAt,
	}
}

type petDoc struct {
	ID               string    `bson:"_id"`
	OwnerEmail       string    `bson:"ownerEmail"`
	OwnerName        string    `bson:"ownerName"`
	Name             string    `bson:"name"`
	Species          string    `bson:"species"`
	Age              string    `bson:"age"`
	Location         string    `bson:"location"`
	Image            string    `bson:"image"`
	ShortDescription string    `bson:"shortDescription"`
	LongDescription  string    `bson:"longDescription"`
	Adopted          bool      `bson:"adopted"`
	CreatedAt        time.Time `bson:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt"`
}

func toPetDoc(p pets.Pet) petDoc {
	return petDoc(p)
}

func (d petDoc) domain() pets.Pet {
	return pets.Pet(d)
}

type adoptionDoc struct {
	ID             string    `bson:"_id"`
	PetID          string    `bson:"petId"`
	PetName        string    `bson:"petName"`
	PetImage       string    `bson:"petImage"`
	RequesterName  string    `bson:"requesterName"`
	RequesterEmail string    `bson:"requesterEmail"`
	Phone          string    `bson:"phone"`
	Address        string    `bson:"address"`
	PetOwnerEmail  string    `bson:"petOwnerEmail"`
	Status         string    `bson:"status"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

func toAdoptionDoc(a adoptions.AdoptionRequest) adoptionDoc {
	return adoptionDoc{
		ID:             a.ID,
		PetID:          a.PetID,
		PetName:        a.PetName,
		PetImage:       a.PetImage,
		RequesterName:  a.RequesterName,
		RequesterEmail: a.RequesterEmail,
		Phone:          a.Phone,
		Address:        a.Address,
		PetOwnerEmail:  a.PetOwnerEmail,
		Status:         string(a.Status),
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func (d adoptionDoc) domain() adoptions.AdoptionRequest {
	return adoptions.AdoptionRequest{
		ID:             d.ID,
		PetID:          d.PetID,
		PetName:        d.PetName,
		PetImage:       d.PetImage,
		RequesterName:  d.RequesterName,
		RequesterEmail: d.RequesterEmail,
		Phone:          d.Phone,
		Address:        d.Address,
		PetOwnerEmail:  d.PetOwnerEmail,
		Status:         adoptions.Status(d.Status),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

type campaignDoc struct {
	ID               string    `bson:"_id"`
	OwnerEmail       string    `bson:"ownerEmail"`
	OwnerName        string    `bson:"ownerName"`
	PetName          string    `bson:"petName"`
	Image            string    `bson:"image"`
	MaxAmount        int64     `bson:"maxAmount"` // centavos
	LastDate         time.Time `bson:"lastDate"`
	ShortDescription string    `bson:"shortDescription"`
	LongDescription  string    `bson:"longDescription"`
	Status           string    `bson:"status"`
	TotalDonations   int64     `bson:"totalDonations"`
	CreatedAt        time.Time `bson:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt"`
}

func toCampaignDoc(c campaigns.Campaign) campaignDoc {
	return campaignDoc{
		ID:               c.ID,
		OwnerEmail:       c.OwnerEmail,
		OwnerName:        c.OwnerName,
		PetName:          c.PetName,
		Image:            c.Image,
		MaxAmount:        int64(c.MaxAmount),
		LastDate:         c.LastDate,
		ShortDescription: c.ShortDescription,
		LongDescription:  c.LongDescription,
		Status:           string(c.Status),
		TotalDonations:   int64(c.TotalDonations),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (d campaignDoc) domain() campaigns.Campaign {
	return campaigns.Campaign{
		ID:               d.ID,
		OwnerEmail:       d.OwnerEmail,
		OwnerName:        d.OwnerName,
		PetName:          d.PetName,
		Image:            d.Image,
		MaxAmount:        money.Cents(d.MaxAmount),
		LastDate:         d.LastDate,
		ShortDescription: d.ShortDescription,
		LongDescription:  d.LongDescription,
		Status:           campaigns.Status(d.Status),
		TotalDonations:   money.Cents(d.TotalDonations),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type paymentDoc struct {
	ID            string    `bson:"_id"`
	CampaignID    string    `bson:"campaignId"`
	PayerEmail    string    `bson:"email"`
	DonorName     string    `bson:"donorName"`
	Amount        int64     `bson:"amount"`
	PaymentMethod string    `bson:"paymentMethod"`
	TransactionID string    `bson:"transactionId"`
	PaidAt        time.Time `bson:"paidAt"`
}

func toPaymentDoc(p payments.Payment) paymentDoc {
	return paymentDoc{
		ID:            p.ID,
		CampaignID:    p.CampaignID,
		PayerEmail:    p.PayerEmail,
		DonorName:     p.DonorName,
		Amount:        int64(p.Amount),
		PaymentMethod: p.PaymentMethod,
		TransactionID: p.TransactionID,
		PaidAt:        p.PaidAt,
	}
}

func (d paymentDoc) domain() payments.Payment {
	return payments.Payment{
		ID:            d.ID,
		CampaignID:    d.CampaignID,
		PayerEmail:    d.PayerEmail,
		DonorName:     d.DonorName,
		Amount:        money.Cents(d.Amount),
		PaymentMethod: d.PaymentMethod,
		TransactionID: d.TransactionID,
		PaidAt:        d.PaidAt,
	}
}
