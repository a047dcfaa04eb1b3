package onboarding_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"schoolapp-backend/entity"
	"schoolapp-backend/errs"
	"schoolapp-backend/onboarding"
	"schoolapp-backend/store"
)

func newRequest() *onboarding.Request {
	return &onboarding.Request{
		Username:    "jdoe",
		Email:       "j@x.com",
		Password:    "secret1",
		UserType:    entity.TypeStudent,
		FirstName:   "J",
		SameAddress: true,
		PresentAddress: onboarding.AddressFields{
			HouseNo:    "12",
			StreetName: "Main Street",
			Pincode:    "600001",
		},
		FatherName: "John Doe Sr",
		Filename:   "birth-certificate.pdf",
		Filepath:   "/uploads/birth-certificate.pdf",
		Filesize:   120000,
	}
}

var _ = Describe("Onboard", func() {
	var (
		users     *store.MemoryUsers
		profiles  *store.MemoryProfiles
		addresses *store.MemoryAddresses
		parents   *store.MemoryParents
		files     *store.MemoryFiles
		st        onboarding.Stores
		svc       *onboarding.Service
	)

	BeforeEach(func() {
		users = store.NewMemoryUsers()
		profiles = store.NewMemoryProfiles()
		addresses = store.NewMemoryAddresses()
		parents = store.NewMemoryParents()
		files = store.NewMemoryFiles()
		st = onboarding.Stores{
			Users:     users,
			Profiles:  profiles,
			Addresses: addresses,
			Parents:   parents,
			Files:     files,
		}
		svc = onboarding.NewService(st)
	})

	expectNoRecords := func(userid string) {
		_, err := users.FindByUserID(context.Background(), userid)
		Expect(err).To(MatchError(errs.ErrNotFound))
		_, err = profiles.FindByUserID(context.Background(), userid)
		Expect(err).To(MatchError(errs.ErrNotFound))
		a, err := addresses.FindByUserID(context.Background(), userid)
		Expect(err).To(BeNil())
		Expect(a).To(BeEmpty())
		_, err = parents.FindByUserID(context.Background(), userid)
		Expect(err).To(MatchError(errs.ErrNotFound))
		f, err := files.FindByUserID(context.Background(), userid)
		Expect(err).To(BeNil())
		Expect(f).To(BeEmpty())
	}

	expectNoUsers := func() {
		all, err := users.FindAll(context.Background())
		Expect(err).To(BeNil())
		Expect(all).To(BeEmpty())
	}

	Describe("happy path", func() {
		Specify("same address creates exactly one address row", func() {
			userid, err := svc.Onboard(context.Background(), newRequest())
			Expect(err).To(BeNil())
			Expect(userid).To(Equal("st000000001"))

			u, err := users.FindByUserID(context.Background(), userid)
			Expect(err).To(BeNil())
			Expect(u.Username).To(Equal("jdoe"))
			Expect(u.IsActive).To(BeTrue())
			Expect(bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1"))).To(BeNil())

			p, err := profiles.FindByUserID(context.Background(), userid)
			Expect(err).To(BeNil())
			Expect(p.FirstName).To(Equal("J"))
			Expect(p.ProfileUnID).To(HavePrefix("profile_"))

			a, err := addresses.FindByUserID(context.Background(), userid)
			Expect(err).To(BeNil())
			Expect(a).To(HaveLen(1))
			Expect(a[0].AddressType).To(Equal(entity.AddressPresent))
			Expect(a[0].HouseNo).To(Equal("12"))

			par, err := parents.FindByUserID(context.Background(), userid)
			Expect(err).To(BeNil())
			Expect(par.FatherName).To(Equal("John Doe Sr"))

			f, err := files.FindByUserID(context.Background(), userid)
			Expect(err).To(BeNil())
			Expect(f).To(HaveLen(1))
			Expect(f[0].Filename).To(Equal("birth-certificate.pdf"))
		})

		Specify("distinct addresses create a present and a permanent row", func() {
			req := newRequest()
			req.SameAddress = false
			req.PermanentAddress = onboarding.AddressFields{
				HouseNo:    "99",
				StreetName: "Old Lane",
			}

			userid, err := svc.Onboard(context.Background(), req)
			Expect(err).To(BeNil())

			a, err := addresses.FindByUserID(context.Background(), userid)
			Expect(err).To(BeNil())
			Expect(a).To(HaveLen(2))

			byType := map[string]*entity.Address{}
			for _, addr := range a {
				byType[addr.AddressType] = addr
			}
			Expect(byType[entity.AddressPresent].HouseNo).To(Equal("12"))
			Expect(byType[entity.AddressPermanent].HouseNo).To(Equal("99"))
		})

		Specify("sequence numbers are per type", func() {
			_, err := svc.Onboard(context.Background(), newRequest())
			Expect(err).To(BeNil())

			req := newRequest()
			req.Username = "msmith"
			req.Email = "m@x.com"
			userid, err := svc.Onboard(context.Background(), req)
			Expect(err).To(BeNil())
			Expect(userid).To(Equal("st000000002"))

			req = newRequest()
			req.Username = "teach"
			req.Email = "t@x.com"
			req.UserType = entity.TypeTeacher
			userid, err = svc.Onboard(context.Background(), req)
			Expect(err).To(BeNil())
			Expect(userid).To(Equal("te000000001"))
		})

		Specify("empty user type defaults to student", func() {
			req := newRequest()
			req.UserType = ""
			userid, err := svc.Onboard(context.Background(), req)
			Expect(err).To(BeNil())
			Expect(userid).To(HavePrefix("st"))
		})
	})

	Describe("validation", func() {
		Specify("missing username writes nothing", func() {
			req := newRequest()
			req.Username = ""
			_, err := svc.Onboard(context.Background(), req)
			Expect(err).To(MatchError(errs.ErrUsernameRequired))
			expectNoUsers()
		})

		Specify("missing email writes nothing", func() {
			req := newRequest()
			req.Email = ""
			_, err := svc.Onboard(context.Background(), req)
			Expect(err).To(MatchError(errs.ErrEmailRequired))
			expectNoUsers()
		})

		Specify("malformed email writes nothing", func() {
			req := newRequest()
			req.Email = "not-an-email"
			_, err := svc.Onboard(context.Background(), req)
			Expect(err).To(MatchError(errs.ErrEmailAddressFormat))
			expectNoUsers()
		})

		Specify("missing password writes nothing", func() {
			req := newRequest()
			req.Password = ""
			_, err := svc.Onboard(context.Background(), req)
			Expect(err).To(MatchError(errs.ErrPasswordRequired))
			expectNoUsers()
		})

		Specify("unknown user type writes nothing", func() {
			req := newRequest()
			req.UserType = "janitor"
			_, err := svc.Onboard(context.Background(), req)
			Expect(err).To(MatchError(errs.ErrInvalidUserType))
			expectNoUsers()
		})
	})

	Describe("duplicates", func() {
		BeforeEach(func() {
			_, err := svc.Onboard(context.Background(), newRequest())
			Expect(err).To(BeNil())
		})

		Specify("same username conflicts before any write", func() {
			req := newRequest()
			req.Email = "other@x.com"
			_, err := svc.Onboard(context.Background(), req)
			Expect(err).To(MatchError(errs.ErrAlreadyExists))

			all, err := users.FindAll(context.Background())
			Expect(err).To(BeNil())
			Expect(all).To(HaveLen(1))
		})

		Specify("same email conflicts before any write", func() {
			req := newRequest()
			req.Username = "other"
			_, err := svc.Onboard(context.Background(), req)
			Expect(err).To(MatchError(errs.ErrAlreadyExists))

			all, err := users.FindAll(context.Background())
			Expect(err).To(BeNil())
			Expect(all).To(HaveLen(1))
		})
	})

	Describe("rollback on mid-sequence failure", func() {
		expectCreationError := func(err error, step string) {
			var ce *errs.CreationError
			Expect(errors.As(err, &ce)).To(BeTrue())
			Expect(ce.Step).To(Equal(step))
			Expect(errors.Is(err, errs.ErrDatabase)).To(BeTrue())
		}

		Specify("user insert failure leaves nothing behind", func() {
			st.Users = &failingUsers{UserStore: users, FailInsert: true}
			svc = onboarding.NewService(st)

			_, err := svc.Onboard(context.Background(), newRequest())
			expectCreationError(err, "user")
			expectNoRecords("st000000001")
		})

		Specify("read-back failure removes the created user", func() {
			st.Users = &failingUsers{UserStore: users, FailRead: true}
			svc = onboarding.NewService(st)

			_, err := svc.Onboard(context.Background(), newRequest())
			expectCreationError(err, "user lookup")
			expectNoRecords("st000000001")
		})

		Specify("profile failure removes the user", func() {
			st.Profiles = &failingProfiles{ProfileStore: profiles, FailInsert: true}
			svc = onboarding.NewService(st)

			_, err := svc.Onboard(context.Background(), newRequest())
			expectCreationError(err, "profile")
			expectNoRecords("st000000001")
		})

		Specify("present address failure removes user and profile", func() {
			st.Addresses = &failingAddresses{AddressStore: addresses, FailInsertAt: 1}
			svc = onboarding.NewService(st)

			_, err := svc.Onboard(context.Background(), newRequest())
			expectCreationError(err, "present address")
			expectNoRecords("st000000001")
		})

		Specify("permanent address failure removes both addresses", func() {
			st.Addresses = &failingAddresses{AddressStore: addresses, FailInsertAt: 2}
			svc = onboarding.NewService(st)

			req := newRequest()
			req.SameAddress = false
			_, err := svc.Onboard(context.Background(), req)
			expectCreationError(err, "permanent address")
			expectNoRecords("st000000001")
		})

		Specify("parent failure removes user, profile and addresses", func() {
			st.Parents = &failingParents{ParentStore: parents, FailInsert: true}
			svc = onboarding.NewService(st)

			_, err := svc.Onboard(context.Background(), newRequest())
			expectCreationError(err, "parent")
			expectNoRecords("st000000001")
		})

		Specify("file failure removes everything else", func() {
			st.Files = &failingFiles{FileStore: files, FailInsert: true}
			svc = onboarding.NewService(st)

			_, err := svc.Onboard(context.Background(), newRequest())
			expectCreationError(err, "file")
			expectNoRecords("st000000001")
		})

		Specify("rollback never touches other users", func() {
			_, err := svc.Onboard(context.Background(), newRequest())
			Expect(err).To(BeNil())

			st.Parents = &failingParents{ParentStore: parents, FailInsert: true}
			svc = onboarding.NewService(st)

			req := newRequest()
			req.Username = "msmith"
			req.Email = "m@x.com"
			_, err = svc.Onboard(context.Background(), req)
			expectCreationError(err, "parent")

			u, err := users.FindByUserID(context.Background(), "st000000001")
			Expect(err).To(BeNil())
			Expect(u.Username).To(Equal("jdoe"))
			_, err = profiles.FindByUserID(context.Background(), "st000000001")
			Expect(err).To(BeNil())
		})

		Specify("a failing compensation never masks the original error", func() {
			st.Users = &failingUsers{UserStore: users, FailDelete: true}
			st.Profiles = &failingProfiles{ProfileStore: profiles, FailInsert: true}
			svc = onboarding.NewService(st)

			_, err := svc.Onboard(context.Background(), newRequest())
			expectCreationError(err, "profile")

			// the rollback could not delete the user, so it stays as an
			// orphan; the caller still sees the profile failure
			_, err = users.FindByUserID(context.Background(), "st000000001")
			Expect(err).To(BeNil())
		})
	})

	Describe("Rollback", func() {
		Specify("is idempotent and scoped to the given userid", func() {
			userid, err := svc.Onboard(context.Background(), newRequest())
			Expect(err).To(BeNil())

			req := newRequest()
			req.Username = "msmith"
			req.Email = "m@x.com"
			other, err := svc.Onboard(context.Background(), req)
			Expect(err).To(BeNil())

			led := onboarding.FullLedger(userid)
			svc.Rollback(context.Background(), led)
			svc.Rollback(context.Background(), led)

			expectNoRecords(userid)

			u, err := users.FindByUserID(context.Background(), other)
			Expect(err).To(BeNil())
			Expect(u.Username).To(Equal("msmith"))
			_, err = parents.FindByUserID(context.Background(), other)
			Expect(err).To(BeNil())
		})
	})
})
