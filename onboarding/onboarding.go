package onboarding

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"schoolapp-backend/entity"
	"schoolapp-backend/errs"
	"schoolapp-backend/log"
)

// AddressFields is one address block of the combined payload.
type AddressFields struct {
	HouseNo     string `json:"houseNo"`
	StreetName  string `json:"streetName"`
	AreaName    string `json:"areaName"`
	Landmark    string `json:"landmark"`
	District    string `json:"district"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	PhoneNumber string `json:"phoneNumber"`
}

// Request is the combined payload one registration submits: credentials plus
// the profile, address, parent and file blocks fanned out over the dependent
// collections.
type Request struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	UserType string `json:"userType"`

	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	DateOfBirth   string `json:"dateOfBirth"`
	AadharNumber  string `json:"aadharNumber"`
	ContactNumber string `json:"contactNumber"`
	Grade         string `json:"grade"`
	Class         string `json:"class"`
	ClassTeacher  string `json:"classTeacher"`
	ProfilePhoto  string `json:"profilePhoto"`

	PresentAddress AddressFields `json:"presentAddress"`
	// SameAddress is the caller declaring both addresses identical; the
	// permanent block is then ignored, never compared.
	SameAddress      bool          `json:"sameAddress"`
	PermanentAddress AddressFields `json:"permanentAddress"`

	FatherName       string `json:"fatherName"`
	FatherAadhar     string `json:"fatherAadhar"`
	FatherOccupation string `json:"fatherOccupation"`
	MotherName       string `json:"motherName"`
	MotherAadhar     string `json:"motherAadhar"`
	MotherOccupation string `json:"motherOccupation"`

	Filename string `json:"filename"`
	Filepath string `json:"filepath"`
	Filesize int64  `json:"filesize"`
}

// Service drives the onboarding write sequence over the five collections.
type Service struct {
	st  Stores
	seq *Sequencer
}

func NewService(st Stores) *Service {
	return &Service{
		st:  st,
		seq: NewSequencer(st.Users),
	}
}

// Onboard runs the full sequence: user, profile, present address, optional
// permanent address, parent, file. Each write lands in the ledger before the
// next one starts; any failure rolls the ledger back in reverse and the
// original error is returned. With no transaction across the collections a
// concurrent reader can observe a partially onboarded user mid-sequence.
func (s *Service) Onboard(ctx context.Context, req *Request) (userid string, err error) {
	if req.Username == "" {
		return "", errs.ErrUsernameRequired
	}

	if req.Email == "" {
		return "", errs.ErrEmailRequired
	}

	if _, mailErr := mail.ParseAddress(req.Email); mailErr != nil {
		return "", errs.ErrEmailAddressFormat
	}

	if req.Password == "" {
		return "", errs.ErrPasswordRequired
	}

	usertype := req.UserType
	if usertype == "" {
		usertype = entity.TypeStudent
	}
	if !entity.ValidUserType(usertype) {
		return "", errs.ErrInvalidUserType
	}

	existing, err := s.st.Users.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return "", err
	}
	if existing != nil {
		return "", errs.ErrAlreadyExists
	}

	led := &Ledger{}
	// The rollback must run on every failing exit, including caller
	// cancellation mid-sequence, so it gets a fresh context.
	defer func() {
		if err != nil && !led.Empty() {
			s.Rollback(context.Background(), led)
		}
	}()

	hash, hashErr := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if hashErr != nil {
		log.Logger.Error("failed to generate bcrypt hash", zap.Error(hashErr))
		return "", errs.ErrCryptographic
	}

	uid, err := s.seq.Next(ctx, usertype)
	if err != nil {
		return "", &errs.CreationError{Step: "user", Err: err}
	}

	u := &entity.User{
		ID:        primitive.NewObjectID(),
		UserID:    uid,
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		Phone:     req.Phone,
		UserType:  usertype,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if insertErr := s.st.Users.Insert(ctx, u); insertErr != nil {
		err = &errs.CreationError{Step: "user", Err: insertErr}
		return "", err
	}
	led.Record(KindUser, uid)

	// Re-read the stored record: the userid threading every dependent write
	// is whatever actually landed, not the in-memory copy.
	stored, readErr := s.st.Users.FindByUsername(ctx, req.Username)
	if readErr != nil {
		err = &errs.CreationError{Step: "user lookup", Err: readErr}
		return "", err
	}
	userid = stored.UserID

	p := &entity.Profile{
		ID:            primitive.NewObjectID(),
		ProfileUnID:   "profile_" + uuid.New().String(),
		UserID:        userid,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfBirth:   req.DateOfBirth,
		AadharNumber:  req.AadharNumber,
		ContactNumber: req.ContactNumber,
		Grade:         req.Grade,
		Class:         req.Class,
		ClassTeacher:  req.ClassTeacher,
		ProfilePhoto:  req.ProfilePhoto,
		CreatedAt:     time.Now(),
	}
	if insertErr := s.st.Profiles.Insert(ctx, p); insertErr != nil {
		err = &errs.CreationError{Step: "profile", Err: insertErr}
		return "", err
	}
	led.Record(KindProfile, userid)

	if insertErr := s.st.Addresses.Insert(ctx, newAddress(userid, entity.AddressPresent, &req.PresentAddress)); insertErr != nil {
		err = &errs.CreationError{Step: "present address", Err: insertErr}
		return "", err
	}
	led.Record(KindAddress, userid)

	if !req.SameAddress {
		if insertErr := s.st.Addresses.Insert(ctx, newAddress(userid, entity.AddressPermanent, &req.PermanentAddress)); insertErr != nil {
			err = &errs.CreationError{Step: "permanent address", Err: insertErr}
			return "", err
		}
		led.Record(KindAddress, userid)
	}

	par := &entity.Parent{
		ID:               primitive.NewObjectID(),
		ParentUnID:       "parent_" + uuid.New().String(),
		UserID:           userid,
		FatherName:       req.FatherName,
		FatherAadhar:     req.FatherAadhar,
		FatherOccupation: req.FatherOccupation,
		MotherName:       req.MotherName,
		MotherAadhar:     req.MotherAadhar,
		MotherOccupation: req.MotherOccupation,
		CreatedAt:        time.Now(),
	}
	if insertErr := s.st.Parents.Insert(ctx, par); insertErr != nil {
		err = &errs.CreationError{Step: "parent", Err: insertErr}
		return "", err
	}
	led.Record(KindParent, userid)

	f := &entity.File{
		ID:        primitive.NewObjectID(),
		FileUnID:  "file_" + uuid.New().String(),
		UserID:    userid,
		Filename:  req.Filename,
		Filepath:  req.Filepath,
		Filesize:  req.Filesize,
		CreatedAt: time.Now(),
	}
	if insertErr := s.st.Files.Insert(ctx, f); insertErr != nil {
		err = &errs.CreationError{Step: "file", Err: insertErr}
		return "", err
	}
	led.Record(KindFile, userid)

	return userid, nil
}

func newAddress(userid, addressType string, fields *AddressFields) *entity.Address {
	return &entity.Address{
		ID:          primitive.NewObjectID(),
		AddressUnID: "address_" + uuid.New().String(),
		UserID:      userid,
		HouseNo:     fields.HouseNo,
		StreetName:  fields.StreetName,
		AreaName:    fields.AreaName,
		Landmark:    fields.Landmark,
		District:    fields.District,
		State:       fields.State,
		Pincode:     fields.Pincode,
		PhoneNumber: fields.PhoneNumber,
		AddressType: addressType,
		CreatedAt:   time.Now(),
	}
}
