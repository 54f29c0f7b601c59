package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	MoviesNotFound = "Movies not found"
	MovieNotFound  = "Movie not found"
	//----------------------
	UserNotFound         = "Cannot find user"
	FavoriteNotFound     = "Movie not found in favorites"
	ProfileImageNotFound = "Cannot find profile image"
	ReportNotReady       = "Analytics report is being generated, try again later"
	//----------------------
	InvalidRefreshToken = "Invalid RefreshToken"
	InvalidToken        = "Invalid/Stale Token"
	//----------------------
	UserPassNotMatch = "Username and password do not match"
	PassNotConfirmed = "Passwords do not match"
	ShortPassword    = "Password must be at least 8 characters"
	InvalidEmail     = "Invalid email address"
	//----------------------
	BadRequestBody = "Incorrect request body"
	QueryRequired  = "Query parameter is required"
	//----------------------
	UsernameAlreadyExist = "This username already exists"
	EmailAlreadyExist    = "This email already exists"
	AlreadyExist         = "Already exist"
	AlreadyFavorite      = "Movie already in favorites"
	//----------------------
	ExceedProfileImageSize  = "Exceeded profile image size limit"
	InvalidProfileImageType = "Invalid profile image type"
	//----------------------
)
