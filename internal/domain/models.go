package domain

import "time"

type Profile struct {
	ID         string
	Name       string
	Email      string
	ResumeURL  string
	GitHub     string
	LeetCode   string
	CodeChef   string
	Codeforces string
	CreatedAt  *time.Time
	UpdatedAt  *time.Time
}

// ProfilePatch carries a partial profile update: nil fields are left untouched.
type ProfilePatch struct {
	Name       *string
	Email      *string
	ResumeURL  *string
	GitHub     *string
	LeetCode   *string
	CodeChef   *string
	Codeforces *string
}

func (p ProfilePatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.ResumeURL == nil &&
		p.GitHub == nil && p.LeetCode == nil && p.CodeChef == nil && p.Codeforces == nil
}

// Apply returns a copy of profile with the patch fields written over it.
func (p ProfilePatch) Apply(profile Profile) Profile {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&profile.Name, p.Name)
	set(&profile.Email, p.Email)
	set(&profile.ResumeURL, p.ResumeURL)
	set(&profile.GitHub, p.GitHub)
	set(&profile.LeetCode, p.LeetCode)
	set(&profile.CodeChef, p.CodeChef)
	set(&profile.Codeforces, p.Codeforces)
	return profile
}
