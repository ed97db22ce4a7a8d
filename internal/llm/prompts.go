package llm

import (
	"fmt"
	"strings"
)

// truncateLimit caps how much resume/JD text is embedded in a prompt.
const truncateLimit = 12000

// SkillExtractionPrompt asks for 5-10 professional skills from resume text as
// strict JSON.
func SkillExtractionPrompt(resumeText string) string {
	var sb strings.Builder
	sb.WriteString("You are a resume analyst. Extract 5-10 professional skills from the resume below.\n\n")
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString("{\"skills\": [\"skill name\", ...]}\n\n")
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract skills directly from the text, do not invent.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation.\n\n")
	sb.WriteString("Resume:\n\"\"\"\n")
	sb.WriteString(truncate(resumeText))
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

// ContactExtractionPrompt asks for contact details from resume text as strict
// JSON.
func ContactExtractionPrompt(resumeText string) string {
	var sb strings.Builder
	sb.WriteString("You are a resume parser. Extract the candidate's contact details from the resume below.\n\n")
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString("{\"name\": \"...\", \"email\": \"...\", \"phone\": \"...\", \"links\": [\"url\", ...]}\n\n")
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Omit fields that are not present in the text; never guess.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation.\n\n")
	sb.WriteString("Resume:\n\"\"\"\n")
	sb.WriteString(truncate(resumeText))
	sb.WriteString("\n\"\"\"\n")
	return sb.String()
}

// JDMatchPrompt asks for one semantic match score per job description, 0-100,
// as strict JSON.
func JDMatchPrompt(resumeText string, jdTexts []string) string {
	var sb strings.Builder
	sb.WriteString("You are a recruiting analyst. Score how well this resume matches each job description semantically, 0-100.\n\n")
	sb.WriteString("Resume:\n\"\"\"\n")
	sb.WriteString(truncate(resumeText))
	sb.WriteString("\n\"\"\"\n")
	for i, jd := range jdTexts {
		sb.WriteString(fmt.Sprintf("\nJob description %d:\n\"\"\"\n%s\n\"\"\"\n", i+1, truncate(jd)))
	}
	sb.WriteString("\nReturn ONLY valid JSON with one score per job description, in order:\n")
	sb.WriteString("{\"scores\": [82, 76]}\n")
	return sb.String()
}

// RoadmapPrompt asks for a short growth roadmap as freeform markdown.
func RoadmapPrompt(resumeText string, skills []string, jdTexts []string) string {
	var sb strings.Builder
	sb.WriteString("You are a career coach. Write a short growth roadmap (4-6 bullet points) for this candidate: ")
	sb.WriteString("concrete courses, projects, and 30/60/90 goals that close the gap between their current profile and their target roles.\n\n")
	if len(skills) > 0 {
		sb.WriteString("Current skills: ")
		sb.WriteString(strings.Join(skills, ", "))
		sb.WriteString("\n\n")
	}
	sb.WriteString("Resume:\n\"\"\"\n")
	sb.WriteString(truncate(resumeText))
	sb.WriteString("\n\"\"\"\n")
	for i, jd := range jdTexts {
		sb.WriteString(fmt.Sprintf("\nTarget role %d:\n\"\"\"\n%s\n\"\"\"\n", i+1, truncate(jd)))
	}
	sb.WriteString("\nReturn markdown bullet points only.\n")
	return sb.String()
}

func truncate(text string) string {
	if len(text) <= truncateLimit {
		return text
	}
	return text[:truncateLimit]
}
