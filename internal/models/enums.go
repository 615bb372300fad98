package models

type SkillCategory string

const (
	SkillCategoryLanguage  SkillCategory = "Language"
	SkillCategoryFramework SkillCategory = "Framework/Library"
	SkillCategoryTool      SkillCategory = "Tool"
	SkillCategoryPlatform  SkillCategory = "Platform"
)

func (c SkillCategory) IsValid() bool {
	switch c {
	case SkillCategoryLanguage, SkillCategoryFramework, SkillCategoryTool, SkillCategoryPlatform:
		return true
	default:
		return false
	}
}
