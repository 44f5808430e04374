package template

// StarterFiles bundles the generated project files for a fresh widget.
// Both use {{variable}} placeholders for substitution.

// DefaultChoices is the starter choices catalogue written by `dropsel init`.
const DefaultChoices = `# Choices for the {{name}} widget.
# Each entry needs an id; label falls back to the id, enabled defaults to true.
choices:
  - id: apple
    label: Apple
  - id: banana
    label: Banana
  - id: cherry
    label: Cherry
  - id: durian
    label: Durian
    enabled: false
  - id: elderberry
    label: Elderberry
`

// DefaultConfig is the starter project config written by `dropsel init`.
const DefaultConfig = `name: {{name}}
choices_file: {{choices}}
popup: {{popup}}
trigger: false
multi: true
data_dir: .dropsel
log_level: info
`
