package session_test

import (
	"testing"
	"time"

	"github.com/fynlo/fynlo-go/session"
	"github.com/golang-jwt/jwt/v4"
	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
)

func TestUnitSession(t *testing.T) {
	spec.Run(t, "Testing the session boundary", testSession, spec.Report(report.Terminal{}))
}

func testSession(t *testing.T, when spec.G, it spec.S) {
	it.Before(func() {
		RegisterTestingT(t)
	})

	when("StaticTokenSource", func() {
		it("hands out the configured token", func() {
			token, ok := session.NewStaticTokenSource("tok-123").AccessToken()
			Expect(ok).To(BeTrue())
			Expect(token).To(Equal("tok-123"))
		})

		it("reports no session for an empty token", func() {
			_, ok := session.NewStaticTokenSource("").AccessToken()
			Expect(ok).To(BeFalse())
		})
	})

	when("JWTSource", func() {
		it("hands out a token whose exp claim lies in the future", func() {
			subject, err := session.NewJWTSource(signedToken(t, time.Now().Add(time.Hour)))
			Expect(err).NotTo(HaveOccurred())

			token, ok := subject.AccessToken()
			Expect(ok).To(BeTrue())
			Expect(token).NotTo(BeEmpty())
		})

		it("stops handing out a token once it has expired", func() {
			subject, err := session.NewJWTSource(signedToken(t, time.Now().Add(-time.Minute)))
			Expect(err).NotTo(HaveOccurred())

			_, ok := subject.AccessToken()
			Expect(ok).To(BeFalse())
		})

		it("throws an error when the token is not a JWT", func() {
			_, err := session.NewJWTSource("not-a-jwt")
			Expect(err).To(HaveOccurred())
		})

		it("clears the session when an empty token is set", func() {
			subject, err := session.NewJWTSource(signedToken(t, time.Now().Add(time.Hour)))
			Expect(err).NotTo(HaveOccurred())
			Expect(subject.SetToken("")).To(Succeed())

			_, ok := subject.AccessToken()
			Expect(ok).To(BeFalse())
		})
	})
}

func signedToken(t *testing.T, exp time.Time) string {
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	Expect(err).NotTo(HaveOccurred())
	return token
}
