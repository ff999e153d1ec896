// SPDX-License-Identifier: MIT
// Package: cyclefeat/vocab
//
// catalog.go — canonical symptom catalog (data-only).
//
// Purpose:
//   - This file is the single source of truth for the default symptom
//     ordering. Construction logic (dedup, index assignment) lives in
//     vocab.go.
//   - symptomsOfInterest is hand-ordered and grouped by domain; the groups
//     are annotated inline. otherSymptoms enumerates every remaining symptom
//     in an equally fixed order.
//
// Determinism:
//   - Both lists are literal and stable; do not reorder after review.
//     Reordering silently changes every downstream feature column.

package vocab

// symptomsOfInterest is the curated subset that leads the catalog.
var symptomsOfInterest = []string{
	"happy", "pms", "sad", "sensitive_emotion", // emotion
	"energized", "exhausted", "high_energy", "low_energy", // energy
	"cramps", "headache", "ovulation_pain", "tender_breasts", // pain
	"acne_skin", "good_skin", "oily_skin", "dry_skin", // skin
}

// otherSymptoms enumerates the rest of the catalog, after the curated subset.
var otherSymptoms = []string{
	"fever_ailment", "injury_ailment", "cold_flu_ailment", "allergy_ailment", // ailment
	"vacation_appointment", "doctor_appointment", "date_appointment", "ob_gyn_appointment", // appointment
	"salty_craving", "carbs_craving", "sweet_craving", "chocolate_craving", // craving
	"bloated", "nauseated", "great_digestion", "gassy", // digestion
	"running", "biking", "yoga", "swimming", // exercise
	"atypical", "egg_white", "sticky", "creamy", // fluid
	"oily_hair", "dry_hair", "bad_hair", "good_hair", // hair
	"antibiotic_medication", "cold_flu_medication", "pain_medication", "antihistamine_medication", // medication
	"meditation",                                // meditation
	"focused", "calm", "stressed", "distracted", // mental
	"motivated", "unproductive", "unmotivated", "productive", // motivation
	"hangover", "cigarettes", "big_night_party", "drinks_party", // party
	"constipated", "normal_poop", "diarrhea", "great_poop", // poop
	"withdrawal_sex", "unprotected_sex", "protected_sex", "high_sex_drive", // sex
	"3-6", "6-9", "0-3", ">9", // sleep
	"conflict_social", "supportive_social", "sociable", "withdrawn_social", // social
	"ovulation_test_neg", "ovulation_test_pos", "pregnancy_test_neg", "pregnancy_test_pos", // test
}
