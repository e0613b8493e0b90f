package i18n

// Message keys for user-facing notifications.
const (
	MsgMustSignIn          = "must_sign_in"
	MsgInvalidRequest      = "invalid_request"
	MsgSelectPortfolio     = "select_portfolio"
	MsgPositiveAmount      = "positive_amount"
	MsgAmountPrecision     = "amount_precision"
	MsgAmountTooLarge      = "amount_too_large"
	MsgUnsupportedCurrency = "unsupported_currency"
	MsgInvalidDate         = "invalid_date"
	MsgDepositSaved        = "deposit_saved"
	MsgDepositPartial      = "deposit_partial"
	MsgDepositSaveError    = "deposit_save_error"

	MsgPortfolioNameRequired = "portfolio_name_required"
	MsgNegativeFee           = "negative_fee"
	MsgPortfolioCreated      = "portfolio_created"
	MsgPortfolioUpdated      = "portfolio_updated"
	MsgPortfolioDeleted      = "portfolio_deleted"
	MsgPortfolioAddError     = "portfolio_add_error"
	MsgPortfolioUpdateError  = "portfolio_update_error"
	MsgPortfolioDeleteError  = "portfolio_delete_error"
	MsgPortfolioLoadError    = "portfolio_load_error"
	MsgPortfolioNotFound     = "portfolio_not_found"

	MsgTransactionsLoadError = "transactions_load_error"
	MsgBalancesLoadError     = "balances_load_error"
	MsgInvalidPageToken      = "invalid_page_token"

	MsgFillAllFields      = "fill_all_fields"
	MsgPasswordsMismatch  = "passwords_mismatch"
	MsgPasswordTooShort   = "password_too_short"
	MsgEmailTaken         = "email_taken"
	MsgRegisterError      = "register_error"
	MsgInvalidCredentials = "invalid_credentials"
	MsgLoginError         = "login_error"
	MsgSessionExpired     = "session_expired"
	MsgGoogleSignInError  = "google_sign_in_error"

	MsgInvalidToken    = "invalid_token"
	MsgTokenExpired    = "token_expired"
	MsgTooManyRequests = "too_many_requests"
	MsgInternalError   = "internal_error"
)

var catalog = map[string]map[string]string{
	"en": {
		MsgMustSignIn:          "You must sign in to do that",
		MsgInvalidRequest:      "Invalid request",
		MsgSelectPortfolio:     "Select a portfolio",
		MsgPositiveAmount:      "Enter a positive amount",
		MsgAmountPrecision:     "Too many decimal places for this currency",
		MsgAmountTooLarge:      "Amount exceeds the deposit limit",
		MsgUnsupportedCurrency: "Unsupported currency",
		MsgInvalidDate:         "Invalid date",
		MsgDepositSaved:        "Deposit saved",
		MsgDepositPartial:      "Deposit saved, but balance was not updated",
		MsgDepositSaveError:    "Failed to save the deposit",

		MsgPortfolioNameRequired: "Enter a portfolio name",
		MsgNegativeFee:           "Fees cannot be negative",
		MsgPortfolioCreated:      "Portfolio added",
		MsgPortfolioUpdated:      "Portfolio updated",
		MsgPortfolioDeleted:      "Portfolio deleted",
		MsgPortfolioAddError:     "Failed to add the portfolio",
		MsgPortfolioUpdateError:  "Failed to update the portfolio",
		MsgPortfolioDeleteError:  "Failed to delete the portfolio",
		MsgPortfolioLoadError:    "Failed to load portfolios",
		MsgPortfolioNotFound:     "Portfolio not found",

		MsgTransactionsLoadError: "Failed to load transactions",
		MsgBalancesLoadError:     "Failed to load balances",
		MsgInvalidPageToken:      "Invalid page token",

		MsgFillAllFields:      "Fill in all fields",
		MsgPasswordsMismatch:  "Passwords do not match",
		MsgPasswordTooShort:   "Password must be at least 6 characters",
		MsgEmailTaken:         "This email is already registered",
		MsgRegisterError:      "Registration failed",
		MsgInvalidCredentials: "Invalid email or password",
		MsgLoginError:         "Sign-in failed",
		MsgSessionExpired:     "Your session has expired, sign in again",
		MsgGoogleSignInError:  "Google sign-in failed",

		MsgInvalidToken:    "Invalid token",
		MsgTokenExpired:    "Token has expired",
		MsgTooManyRequests: "Too many requests. Please try again later.",
		MsgInternalError:   "Internal server error",
	},
	"he": {
		MsgMustSignIn:          "יש להתחבר כדי לבצע פעולה זו",
		MsgInvalidRequest:      "בקשה לא תקינה",
		MsgSelectPortfolio:     "יש לבחור תיק",
		MsgPositiveAmount:      "יש להזין סכום חיובי",
		MsgAmountPrecision:     "יותר מדי ספרות אחרי הנקודה עבור מטבע זה",
		MsgAmountTooLarge:      "הסכום חורג ממגבלת ההפקדה",
		MsgUnsupportedCurrency: "מטבע לא נתמך",
		MsgInvalidDate:         "תאריך לא תקין",
		MsgDepositSaved:        "ההפקדה נשמרה בהצלחה",
		MsgDepositPartial:      "ההפקדה נשמרה, אך היתרה לא עודכנה",
		MsgDepositSaveError:    "שגיאה בשמירת ההפקדה",

		MsgPortfolioNameRequired: "יש להזין שם תיק",
		MsgNegativeFee:           "עמלה לא יכולה להיות שלילית",
		MsgPortfolioCreated:      "התיק נוסף בהצלחה",
		MsgPortfolioUpdated:      "התיק עודכן בהצלחה",
		MsgPortfolioDeleted:      "התיק נמחק",
		MsgPortfolioAddError:     "שגיאה בהוספת התיק",
		MsgPortfolioUpdateError:  "שגיאה בעדכון התיק",
		MsgPortfolioDeleteError:  "שגיאה במחיקת התיק",
		MsgPortfolioLoadError:    "שגיאה בטעינת התיקים",
		MsgPortfolioNotFound:     "התיק לא נמצא",

		MsgTransactionsLoadError: "שגיאה בטעינת הפעולות",
		MsgBalancesLoadError:     "שגיאה בטעינת היתרות",
		MsgInvalidPageToken:      "אסימון עמוד לא תקין",

		MsgFillAllFields:      "יש למלא את כל השדות",
		MsgPasswordsMismatch:  "הסיסמאות לא תואמות",
		MsgPasswordTooShort:   "הסיסמה חייבת להכיל לפחות 6 תווים",
		MsgEmailTaken:         "האימייל כבר קיים במערכת",
		MsgRegisterError:      "אירעה שגיאה בהרשמה",
		MsgInvalidCredentials: "אימייל או סיסמה שגויים",
		MsgLoginError:         "אירעה שגיאה בהתחברות",
		MsgSessionExpired:     "פג תוקף ההתחברות, יש להתחבר מחדש",
		MsgGoogleSignInError:  "שגיאה בהתחברות עם Google",

		MsgInvalidToken:    "אסימון לא תקין",
		MsgTokenExpired:    "פג תוקף האסימון",
		MsgTooManyRequests: "יותר מדי בקשות, נסו שוב מאוחר יותר",
		MsgInternalError:   "שגיאת שרת פנימית",
	},
}
