package seeder

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/Lumos-Labs-HQ/sampleset/internal/dataset"
	"github.com/Lumos-Labs-HQ/sampleset/internal/models"
	"github.com/Lumos-Labs-HQ/sampleset/internal/random"
	"github.com/Lumos-Labs-HQ/sampleset/internal/schema"
	"github.com/Lumos-Labs-HQ/sampleset/internal/seed"
)

// userNamePart lower-cases s and keeps only ASCII letters.
func userNamePart(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, strings.ToLower(s))
}

// samplePassword is the SHA-1 hex digest of "password" followed by id.
func samplePassword(id int) string {
	sum := sha1.Sum([]byte("password" + strconv.Itoa(id)))
	return hex.EncodeToString(sum[:])
}

func generateUsers(env Env, ds *dataset.Dataset) error {
	count, err := prepare(env, ds, schema.User)
	if err != nil {
		return err
	}

	firstNames, err := env.Seeds.Strings(seed.FirstNames)
	if err != nil {
		return err
	}
	lastNames, err := env.Seeds.Strings(seed.LastNames)
	if err != nil {
		return err
	}

	src := env.Rand
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		u := models.User{
			ID:          i + 1,
			RoleID:      pickID(src, len(ds.Roles)),
			DateCreated: src.Date(env.Now.Add(-2*year), env.Now),
		}
		u.UserName = userNamePart(random.Pick(src, firstNames)) + "." + userNamePart(random.Pick(src, lastNames))
		u.Password = samplePassword(u.ID)
		u.DateUpdated, u.DateDeleted = dateChain(src, u.DateCreated, env.Now)

		users = append(users, u)
	}

	ds.Users = users
	return nil
}
