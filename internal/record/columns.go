package record

// Column names shared across pipeline phases.
const (
	ColStableID        = "stable_id"
	ColFirstAddedDate  = "first_added_date"
	ColLastUpdatedDate = "last_updated_date"
	ColActionType      = "action_type"
	ColDataHash        = "data_hash"

	ColCandidateName   = "candidate_name"
	ColFullNameDisplay = "full_name_display"
	ColPrefix          = "prefix"
	ColFirstName       = "first_name"
	ColMiddleName      = "middle_name"
	ColLastName        = "last_name"
	ColSuffix          = "suffix"
	ColNickname        = "nickname"

	ColState        = "state"
	ColOffice       = "office"
	ColDistrict     = "district"
	ColParty        = "party"
	ColCounty       = "county"
	ColElectionYear = "election_year"
	ColElectionType = "election_type"
	ColElectionDate = "election_date"
	ColFilingDate   = "filing_date"

	ColAddress      = "address"
	ColCity         = "city"
	ColAddressState = "address_state"
	ColZipCode      = "zip_code"
	ColPhone        = "phone"
	ColEmail        = "email"
	ColWebsite      = "website"
	ColFacebook     = "facebook"
	ColTwitter      = "twitter"

	ColRawData    = "raw_data"
	ColFileSource = "file_source"
	ColRowIndex   = "row_index"

	ColSourceOffice   = "source_office"
	ColSourceDistrict = "source_district"
	ColSourceParty    = "source_party"

	ColRanInPrimary      = "ran_in_primary"
	ColRanInGeneral      = "ran_in_general"
	ColRanInSpecial      = "ran_in_special"
	ColElectionTypeNotes = "election_type_notes"

	ColProcessingTimestamp = "processing_timestamp"
	ColPipelineVersion     = "pipeline_version"
	ColDataSource          = "data_source"
)

// StructuredColumns is the fixed column set every structural cleaner must
// emit, regardless of the shape of its source extract.
var StructuredColumns = []string{
	ColRawData,
	ColState,
	ColFileSource,
	ColRowIndex,
	ColElectionYear,
	ColCandidateName,
	ColFirstName,
	ColLastName,
	ColMiddleName,
	ColPrefix,
	ColSuffix,
	ColParty,
	ColOffice,
	ColDistrict,
	ColCounty,
	ColAddress,
	ColCity,
	ColZipCode,
	ColEmail,
	ColWebsite,
	ColPhone,
	ColFacebook,
	ColTwitter,
	ColFilingDate,
	ColElectionDate,
	ColElectionType,
	ColAddressState,
}

// NamePartColumns are the fields a state cleaner splits candidate_name into.
var NamePartColumns = []string{
	ColPrefix,
	ColFirstName,
	ColMiddleName,
	ColLastName,
	ColSuffix,
	ColNickname,
}

// IdentityColumns are the fields attached during identity resolution.
var IdentityColumns = []string{
	ColStableID,
	ColFirstAddedDate,
	ColLastUpdatedDate,
	ColActionType,
}

// PreferredOrder is the canonical column sequence of the final output table.
// Columns not listed here are appended after it, never dropped.
var PreferredOrder = []string{
	ColStableID,
	ColState,
	ColFullNameDisplay,
	ColPrefix,
	ColFirstName,
	ColMiddleName,
	ColLastName,
	ColSuffix,
	ColNickname,
	ColOffice,
	ColDistrict,
	ColParty,
	ColAddress,
	ColCity,
	ColAddressState,
	ColZipCode,
	ColPhone,
	ColEmail,
	ColWebsite,
	ColFacebook,
	ColTwitter,
	ColFilingDate,
	ColElectionDate,
	ColFirstAddedDate,
	ColLastUpdatedDate,
	ColCounty,
	ColElectionYear,
	ColActionType,
	ColRawData,
	ColFileSource,
	ColRowIndex,
	ColSourceOffice,
	ColSourceDistrict,
	ColSourceParty,
	ColRanInPrimary,
	ColRanInGeneral,
	ColRanInSpecial,
	ColElectionTypeNotes,
	ColProcessingTimestamp,
	ColPipelineVersion,
	ColDataSource,
}
