package schemas

// Schema names accepted by Validate.
const (
	SkillList = "skill_list"
	Contact   = "contact"
	JDScores  = "jd_scores"
)

// definitions maps schema names to JSON Schema documents. Score ranges are
// enforced here: an LLM that emits numbers outside 0-100 fails validation
// rather than feeding out-of-range values into the composite.
var definitions = map[string]string{
	SkillList: `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["skills"],
		"additionalProperties": false,
		"properties": {
			"skills": {
				"type": "array",
				"minItems": 1,
				"maxItems": 15,
				"items": {"type": "string", "minLength": 1}
			}
		}
	}`,

	Contact: `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"additionalProperties": false,
		"properties": {
			"name": {"type": "string"},
			"email": {"type": "string"},
			"phone": {"type": "string"},
			"links": {
				"type": "array",
				"items": {"type": "string"}
			}
		}
	}`,

	JDScores: `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["scores"],
		"additionalProperties": false,
		"properties": {
			"scores": {
				"type": "array",
				"minItems": 1,
				"items": {"type": "number", "minimum": 0, "maximum": 100}
			}
		}
	}`,
}
