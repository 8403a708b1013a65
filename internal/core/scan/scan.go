// Package scan inspects a project tree for artifacts already deployed
// for a given agent. It reads the same directory conventions the deploy
// engine writes, so a scan immediately after a deploy sees the artifact.
package scan

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aikit-sh/aikit/internal/core/agent"
	"github.com/aikit-sh/aikit/internal/core/deploy"
)

// Skill is one deployed skill found under an agent's skills directory.
// Name and Description come from SKILL.md YAML frontmatter when present;
// a skill without frontmatter keeps its directory name.
type Skill struct {
	Name        string
	Description string
	Dir         string // skill directory path
	Scripts     int    // number of files under scripts/
}

// frontmatter is the YAML block at the top of a SKILL.md.
type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Skills lists deployed skills for an agent under projectRoot. Gated on
// the same capability rules as the resolver: unknown keys and agents
// without skills fail the same way SkillDir does. A missing skills
// directory is an empty result, not an error.
func Skills(projectRoot, agentKey string) ([]Skill, error) {
	a, ok := agent.ByKey(agentKey)
	if !ok {
		return nil, &agent.NotFoundError{Key: agentKey}
	}
	if !a.SupportsSkills() {
		return nil, &agent.UnsupportedError{Key: agentKey, Capability: agent.CapabilitySkill}
	}

	skillsDir := filepath.Join(projectRoot, a.SkillsDir)
	entries, err := os.ReadDir(skillsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading skills directory: %w", err)
	}

	var skills []Skill
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(skillsDir, entry.Name())
		docPath := filepath.Join(dir, deploy.SkillFileName)
		if _, err := os.Stat(docPath); err != nil {
			continue // directory without a SKILL.md is not a skill
		}

		s := Skill{Name: entry.Name(), Dir: dir}
		if fm, err := parseFrontmatter(docPath); err == nil {
			if fm.Name != "" {
				s.Name = fm.Name
			}
			s.Description = fm.Description
		}
		s.Scripts = countFiles(filepath.Join(dir, "scripts"))

		skills = append(skills, s)
	}
	return skills, nil
}

// Commands lists deployed command artifact paths for an agent. Every
// agent has a commands directory; a missing one yields an empty result.
func Commands(projectRoot, agentKey string) ([]string, error) {
	dir, err := deploy.CommandsDir(projectRoot, agentKey)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading commands directory: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// parseFrontmatter reads the --- delimited YAML block at the top of a
// skill document. Absence of frontmatter is an error the caller treats
// as "no metadata", not as a broken skill.
func parseFrontmatter(path string) (*frontmatter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "---" {
		return nil, fmt.Errorf("no frontmatter in %s", path)
	}

	var block strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "---" {
			break
		}
		block.WriteString(line)
		block.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var fm frontmatter
	if err := yaml.Unmarshal([]byte(block.String()), &fm); err != nil {
		return nil, fmt.Errorf("parsing frontmatter in %s: %w", path, err)
	}
	return &fm, nil
}

func countFiles(dir string) int {
	count := 0
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	return count
}
