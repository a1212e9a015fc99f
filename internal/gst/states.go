package gst

// stateNames maps GST state codes (the first two characters of a GSTIN) to
// state names. Codes follow the GST registration state-code list.
var stateNames = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"26": "Dadra and Nagar Haveli and Daman and Diu",
	"27": "Maharashtra",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
}

// StateName returns the display name for a GST state code. Unknown or
// malformed codes return "Unknown" rather than an error so that display
// code never has to branch.
func StateName(code string) string {
	if name, ok := stateNames[code]; ok {
		return name
	}
	return "Unknown"
}

// IsValidStateCode reports whether code is a known GST state code.
func IsValidStateCode(code string) bool {
	_, ok := stateNames[code]
	return ok
}

// ExtractStateCode returns the two-character state code prefix of a GSTIN,
// or "" when the input is too short or the prefix is not a known code.
func ExtractStateCode(gstin string) string {
	if len(gstin) < 2 {
		return ""
	}
	code := gstin[:2]
	if !IsValidStateCode(code) {
		return ""
	}
	return code
}
