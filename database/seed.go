package database

import (
	"context"
	"time"

	"coworking_market/constants"
	"coworking_market/helper"
	"coworking_market/model"
	"coworking_market/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

var seedAreas = []string{
	"City of London",
	"Shoreditch",
	"Canary Wharf",
	"King's Cross",
	"Soho",
	"Southwark",
}

const seedPassword = "123456cw"

// SeedData creates the lookup areas and, when demo is set and the store is
// empty, demo seller and buyer accounts with one location. Safe to run on
// every start.
func SeedData(ctx context.Context, store *repository.Store, demo bool, log *logrus.Logger) error {
	for _, name := range seedAreas {
		s, err := helper.GenerateUniqueAreaSlug(ctx, store.Areas, name)
		if err != nil {
			return err
		}
		// a suffixed slug means the area already exists
		if s != helper.BaseSlug(name) {
			continue
		}
		if err := store.Areas.Create(ctx, &model.Area{Name: name, Slug: s}); err != nil {
			log.WithError(err).WithField("area", name).Warn("failed to seed area")
		}
	}

	if !demo {
		return nil
	}

	existing, err := store.Users.FindByEmail(ctx, "seller@coworking.local")
	if err != nil || existing != nil {
		return err
	}

	hash, err := helper.HashPassword(seedPassword)
	if err != nil {
		return err
	}
	seller := model.User{Email: "seller@coworking.local", Password: hash, FirstName: "Sam", LastName: "Seller", Role: constants.ROLE_SELLER, Status: constants.USER_STATUS_REGISTERED, Active: true}
	buyer := model.User{Email: "buyer@coworking.local", Password: hash, FirstName: "Bea", LastName: "Buyer", Role: constants.ROLE_BUYER, Status: constants.USER_STATUS_REGISTERED, Active: true}
	for _, u := range []*model.User{&seller, &buyer} {
		if err := store.Users.Create(ctx, u); err != nil {
			return err
		}
	}

	area, err := store.Areas.FindBySlug(ctx, helper.BaseSlug(seedAreas[1]))
	if err != nil {
		return err
	}
	location := model.Location{
		UserId:         seller.ID,
		Name:           "The Tea Building",
		Address:        "56 Shoreditch High St",
		Latitude:       "51.5246",
		Longitude:      "-0.0776",
		Town:           "London",
		Postcode:       "E1 6JJ",
		Description:    "Open plan floors above the old tea warehouse.",
		Nearby:         datatypes.JSON(`[{"type":"station","name":"Shoreditch High Street","distance":"0.2 miles","duration":"3 min"}]`),
		WorkSpaceTypes: datatypes.JSON(`["desk"]`),
	}
	if area != nil {
		location.AreaId = &area.ID
	}
	if err := store.Locations.Create(ctx, &location); err != nil {
		return err
	}

	deskType := constants.DESK_MONTHLY_HOT
	minContract := 1
	desk := model.WorkSpace{
		LocationId:        location.ID,
		Type:              constants.WORKSPACE_DESK,
		DeskType:          &deskType,
		Quantity:          20,
		Price:             250,
		MinContractLength: &minContract,
		Facilities:        datatypes.JSON(`["wifi","kitchen"]`),
		Description:       "Hot desks on the second floor.",
		Status:            constants.WORKSPACE_ACTIVE,
	}
	if err := store.WorkSpaces.Create(ctx, &desk); err != nil {
		return err
	}

	now := time.Now()
	booking := model.Booking{
		WorkSpaceId: desk.ID,
		UserId:      buyer.ID,
		StartTime:   now.AddDate(0, 1, 0),
		EndTime:     now.AddDate(0, 2, 0),
		Status:      "confirmed",
	}
	if err := store.Bookings.Create(ctx, &booking); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"seller": seller.Email, "buyer": buyer.Email}).Info("demo data seeded")
	return nil
}
