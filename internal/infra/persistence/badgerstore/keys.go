package badgerstore

import "github.com/google/uuid"

const (
	bookPrefix     = "book:"
	userPrefix     = "user:"
	profilePrefix  = "profile:"
	wishlistPrefix = "wishlist:"
	reviewPrefix   = "review:"

	idxUserUsername    = "idx:user:username:"
	idxUserEmail       = "idx:user:email:"
	idxProfileUser     = "idx:profile:user:"
	idxWishlistPair    = "idx:wishlist:user_book:"
	idxWishlistByUser  = "idx:wishlist:user:"
	idxReviewPair      = "idx:review:user_book:"
	idxReviewByUser    = "idx:review:user:"
)

func bookKey(id uuid.UUID) []byte     { return []byte(bookPrefix + id.String()) }
func userKey(id uuid.UUID) []byte     { return []byte(userPrefix + id.String()) }
func profileKey(id uuid.UUID) []byte  { return []byte(profilePrefix + id.String()) }
func wishlistKey(id uuid.UUID) []byte { return []byte(wishlistPrefix + id.String()) }
func reviewKey(id uuid.UUID) []byte   { return []byte(reviewPrefix + id.String()) }

func usernameIndexKey(username string) []byte { return []byte(idxUserUsername + username) }
func emailIndexKey(email string) []byte       { return []byte(idxUserEmail + email) }

func profileUserIndexKey(userID uuid.UUID) []byte {
	return []byte(idxProfileUser + userID.String())
}

func pairIndexKey(prefix string, userID, bookID uuid.UUID) []byte {
	return []byte(prefix + userID.String() + ":" + bookID.String())
}

func byUserIndexPrefix(prefix string, userID uuid.UUID) []byte {
	return []byte(prefix + userID.String() + ":")
}

func byUserIndexKey(prefix string, userID, id uuid.UUID) []byte {
	return []byte(prefix + userID.String() + ":" + id.String())
}
