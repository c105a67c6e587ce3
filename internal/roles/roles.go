// internal/roles/roles.go
// 主题角色解析：把故事主题映射成一组带剧情标签的角色选项。
// 匹配链：精确命中主题词典 → 关键词部分命中（词典声明顺序，先到先得）
// → 题材默认 → 通用兜底。
package roles

import (
	"strings"

	"github.com/shortreel/promptforge/internal/models"
)

// Option 带主题标签的角色选项
type Option struct {
	Value       models.Role `json:"value"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
}

type labeled struct {
	label string
	desc  string
}

// roleSet 七个角色槽位的主题化标签，输出顺序固定
type roleSet struct {
	hero         labeled
	villain      labeled
	loveInterest labeled
	mother       labeled
	sidekick     labeled
	supporting   labeled
	crowd        labeled
}

func (s roleSet) options() []Option {
	return []Option{
		{models.RoleHero, s.hero.label, s.hero.desc},
		{models.RoleVillain, s.villain.label, s.villain.desc},
		{models.RoleLoveInterest, s.loveInterest.label, s.loveInterest.desc},
		{models.RoleMother, s.mother.label, s.mother.desc},
		{models.RoleSidekick, s.sidekick.label, s.sidekick.desc},
		{models.RoleSupporting, s.supporting.label, s.supporting.desc},
		{models.RoleCrowd, s.crowd.label, s.crowd.desc},
	}
}

// 通用兜底
var defaultSet = roleSet{
	hero:         labeled{"Hero", "Main protagonist"},
	villain:      labeled{"Villain", "Main antagonist"},
	loveInterest: labeled{"Love Interest", "Romantic partner"},
	mother:       labeled{"Mother Figure", "Maternal figure"},
	sidekick:     labeled{"Sidekick", "Hero's ally"},
	supporting:   labeled{"Supporting", "Side character"},
	crowd:        labeled{"Extra", "Background character"},
}

// ---- 超自然 / 科幻 ----

var magicalPowersSet = roleSet{
	hero:         labeled{"Chosen One", "Person with awakened magical powers"},
	villain:      labeled{"Dark Sorcerer", "Seeks to corrupt or steal the magic"},
	loveInterest: labeled{"Enchantress", "Magical romantic connection"},
	mother:       labeled{"Oracle", "Keeper of ancient magical secrets"},
	sidekick:     labeled{"Familiar", "Magical companion or apprentice"},
	supporting:   labeled{"Mystical Mentor", "Guides the hero's powers"},
	crowd:        labeled{"Villagers", "Those affected by magic"},
}

var demonHunterSet = roleSet{
	hero:         labeled{"Demon Hunter", "Warrior against supernatural evil"},
	villain:      labeled{"Demon Lord", "Ancient evil entity"},
	loveInterest: labeled{"Cursed Soul", "Someone bound to the supernatural"},
	mother:       labeled{"Spirit Guide", "Ancestral protector spirit"},
	sidekick:     labeled{"Tech Exorcist", "Modern supernatural tech specialist"},
	supporting:   labeled{"Priest/Shaman", "Religious or spiritual guide"},
	crowd:        labeled{"Possessed", "Innocent victims"},
}

var guardianSpiritSet = roleSet{
	hero:         labeled{"Protected One", "Person guarded by the spirit"},
	villain:      labeled{"Shadow Entity", "Dark force threatening the family"},
	loveInterest: labeled{"Spirit Medium", "Can communicate with the guardian"},
	mother:       labeled{"Guardian Spirit", "Protective ancestral presence"},
	sidekick:     labeled{"Sensitive Child", "Young one who can see spirits"},
	supporting:   labeled{"Skeptic", "Doesn't believe until they witness"},
	crowd:        labeled{"Family", "Those under protection"},
}

var reincarnationSet = roleSet{
	hero:         labeled{"Reborn Soul", "Person discovering past life"},
	villain:      labeled{"Past Enemy", "Adversary from previous life"},
	loveInterest: labeled{"Twin Flame", "Love across lifetimes"},
	mother:       labeled{"Past Life Mother", "Connection through incarnations"},
	sidekick:     labeled{"Memory Keeper", "Helps unlock past memories"},
	supporting:   labeled{"Regression Expert", "Guides through past lives"},
	crowd:        labeled{"Past Connections", "People from previous life"},
}

// ---- 动作 / 惊悚 ----

var oneManArmySet = roleSet{
	hero:         labeled{"Lone Warrior", "One-man army against all odds"},
	villain:      labeled{"Crime Boss", "Ruthless syndicate leader"},
	loveInterest: labeled{"Informant", "Dangerous romantic ally"},
	mother:       labeled{"Hostage", "Family member in danger"},
	sidekick:     labeled{"Arms Dealer", "Weapons and intel supplier"},
	supporting:   labeled{"Corrupt Cop", "Enemy within the system"},
	crowd:        labeled{"Henchmen", "Syndicate soldiers"},
}

var conspiracySet = roleSet{
	hero:         labeled{"Whistleblower", "Exposed to deadly secrets"},
	villain:      labeled{"Shadow Director", "Mastermind behind the conspiracy"},
	loveInterest: labeled{"Double Agent", "Ally with hidden loyalties"},
	mother:       labeled{"Witness", "Innocent caught in the web"},
	sidekick:     labeled{"Hacker", "Digital warfare specialist"},
	supporting:   labeled{"Deep Throat", "Secret informant"},
	crowd:        labeled{"Operatives", "Conspiracy agents"},
}

var raceAgainstTimeSet = roleSet{
	hero:         labeled{"Desperate Father", "Racing to save family"},
	villain:      labeled{"Kidnapper", "Holds leverage over the hero"},
	loveInterest: labeled{"Partner", "Spouse working to help"},
	mother:       labeled{"Grandmother", "Wise family elder"},
	sidekick:     labeled{"Tech Expert", "Tracking and communication"},
	supporting:   labeled{"Negotiator", "Trying peaceful resolution"},
	crowd:        labeled{"Hostages", "Those in danger"},
}

var undercoverSet = roleSet{
	hero:         labeled{"Undercover Agent", "Deep in enemy territory"},
	villain:      labeled{"Target", "Criminal being investigated"},
	loveInterest: labeled{"Handler", "Agency contact and love"},
	mother:       labeled{"Cover Family", "Fake family for cover"},
	sidekick:     labeled{"Rookie Partner", "New agent learning ropes"},
	supporting:   labeled{"Suspicious Lieutenant", "Starts doubting the mole"},
	crowd:        labeled{"Gang Members", "Criminal organization"},
}

// ---- 恐怖 ----

var hauntedHomeSet = roleSet{
	hero:         labeled{"New Owner", "Moved into the haunted property"},
	villain:      labeled{"Vengeful Spirit", "Ghost bound to the house"},
	loveInterest: labeled{"Paranormal Expert", "Helps investigate"},
	mother:       labeled{"Previous Victim", "Spirit of former resident"},
	sidekick:     labeled{"Sensitive Child", "Can see and hear spirits"},
	supporting:   labeled{"Local Historian", "Knows the dark history"},
	crowd:        labeled{"Neighborhood", "Locals who warned them"},
}

var villageCurseSet = roleSet{
	hero:         labeled{"Outsider", "Newcomer who breaks the curse"},
	villain:      labeled{"Curse Bearer", "Entity enforcing the curse"},
	loveInterest: labeled{"Village Maiden", "Local who helps outsider"},
	mother:       labeled{"Village Elder", "Knows the curse origin"},
	sidekick:     labeled{"Brave Youth", "Young villager who believes"},
	supporting:   labeled{"Priest", "Spiritual protection"},
	crowd:        labeled{"Cursed Villagers", "Those suffering"},
}

var possessedSet = roleSet{
	hero:         labeled{"Loving Family Member", "Fighting to save possessed"},
	villain:      labeled{"Demon", "Entity possessing the victim"},
	loveInterest: labeled{"Possessed One", "Victim of possession"},
	mother:       labeled{"Praying Mother", "Faith-driven protector"},
	sidekick:     labeled{"Young Exorcist", "Inexperienced but brave"},
	supporting:   labeled{"Senior Exorcist", "Experienced demon fighter"},
	crowd:        labeled{"Congregation", "Prayer support"},
}

var supernaturalRevengeSet = roleSet{
	hero:         labeled{"Innocent Target", "Wrongly targeted by spirit"},
	villain:      labeled{"Avenging Ghost", "Spirit seeking justice"},
	loveInterest: labeled{"Psychic", "Can communicate with spirit"},
	mother:       labeled{"Guilty Ancestor", "Original wrongdoer's descendent"},
	sidekick:     labeled{"Believer Friend", "Helps investigate the past"},
	supporting:   labeled{"Occult Expert", "Understands spirit laws"},
	crowd:        labeled{"Other Targets", "Connected to original crime"},
}

// ---- 言情 ----

var tragicLoveSet = roleSet{
	hero:         labeled{"Star-Crossed Lover", "Love despite all odds"},
	villain:      labeled{"Obstacle", "Person preventing the union"},
	loveInterest: labeled{"Soulmate", "The forbidden love"},
	mother:       labeled{"Disapproving Mother", "Family opposition"},
	sidekick:     labeled{"Best Friend", "Helps lovers meet secretly"},
	supporting:   labeled{"Wise Elder", "Understands true love"},
	crowd:        labeled{"Society", "Judgmental community"},
}

var childhoodSweetheartsSet = roleSet{
	hero:         labeled{"Returning Love", "Back after years apart"},
	villain:      labeled{"Rival Suitor", "Current romantic competition"},
	loveInterest: labeled{"First Love", "Childhood sweetheart"},
	mother:       labeled{"Matchmaker Mom", "Trying to reunite them"},
	sidekick:     labeled{"Childhood Friend", "Remembers their bond"},
	supporting:   labeled{"Ex-Partner", "Current complicated relationship"},
	crowd:        labeled{"School Friends", "From the old days"},
}

var classBarrierSet = roleSet{
	hero:         labeled{"Lower Class Hero", "Love beyond social status"},
	villain:      labeled{"Elitist Father", "Guards family status"},
	loveInterest: labeled{"Rich Beloved", "Wealthy but in love"},
	mother:       labeled{"Working Mother", "Proud of humble origins"},
	sidekick:     labeled{"Loyal Friend", "Supports despite differences"},
	supporting:   labeled{"Progressive Elder", "Believes in equality"},
	crowd:        labeled{"High Society", "Judgmental elite"},
}

var secondChanceSet = roleSet{
	hero:         labeled{"Divorced/Widowed", "Afraid to love again"},
	villain:      labeled{"Past Trauma", "Memories holding back"},
	loveInterest: labeled{"New Love", "Patient understanding partner"},
	mother:       labeled{"Supportive Parent", "Encourages moving on"},
	sidekick:     labeled{"Child", "Accepts new relationship"},
	supporting:   labeled{"Therapist/Friend", "Helps process past"},
	crowd:        labeled{"Family", "Mixed reactions"},
}

// ---- 复仇 ----

var avengeHonorSet = roleSet{
	hero:         labeled{"Avenging Brother", "Fighting for family honor"},
	villain:      labeled{"Perpetrator", "One who dishonored the family"},
	loveInterest: labeled{"Victim", "The wronged family member"},
	mother:       labeled{"Grieving Mother", "Demands justice"},
	sidekick:     labeled{"Loyal Cousin", "Helps in the mission"},
	supporting:   labeled{"Corrupt Authority", "Failed to provide justice"},
	crowd:        labeled{"Village Council", "Society that watches"},
}

var returnToDestroySet = roleSet{
	hero:         labeled{"Returning Son", "Back for vengeance"},
	villain:      labeled{"Corrupt Patriarch", "Family head who wronged"},
	loveInterest: labeled{"Ally Within", "Family member who helps"},
	mother:       labeled{"Abandoned Mother", "Was also wronged"},
	sidekick:     labeled{"Childhood Servant", "Loyal since youth"},
	supporting:   labeled{"Evidence Holder", "Has proof of crimes"},
	crowd:        labeled{"Estate Workers", "Oppressed employees"},
}

var wronglyAccusedSet = roleSet{
	hero:         labeled{"Innocent Convict", "Falsely imprisoned, now free"},
	villain:      labeled{"True Culprit", "The one who framed hero"},
	loveInterest: labeled{"Faithful Partner", "Never gave up hope"},
	mother:       labeled{"Dying Mother", "Motivation for clearing name"},
	sidekick:     labeled{"Prison Friend", "Met inside, helps outside"},
	supporting:   labeled{"Honest Lawyer", "Fights for justice"},
	crowd:        labeled{"Jury/Public", "Those who judged wrong"},
}

var villageHeroSet = roleSet{
	hero:         labeled{"Village Champion", "Stands for the oppressed"},
	villain:      labeled{"Corrupt Landlord", "Exploits the village"},
	loveInterest: labeled{"Landlord's Daughter", "Forbidden love"},
	mother:       labeled{"Village Mother", "Represents the people"},
	sidekick:     labeled{"Young Rebel", "Inspired follower"},
	supporting:   labeled{"Wise Panchayat Head", "Neutral authority"},
	crowd:        labeled{"Villagers", "The oppressed masses"},
}

// ---- 悬疑 ----

var lockedRoomSet = roleSet{
	hero:         labeled{"Detective", "Solving the impossible crime"},
	villain:      labeled{"Killer", "Mastermind of locked room"},
	loveInterest: labeled{"Prime Suspect", "Innocent but suspicious"},
	mother:       labeled{"Victim's Spouse", "Hiding secrets"},
	sidekick:     labeled{"Assistant", "Helps gather clues"},
	supporting:   labeled{"Forensic Expert", "Provides evidence"},
	crowd:        labeled{"Suspects", "Everyone had motive"},
}

var disappearanceSet = roleSet{
	hero:         labeled{"Investigator", "Searching for the missing"},
	villain:      labeled{"Abductor", "Behind the disappearance"},
	loveInterest: labeled{"Missing Person's Love", "Desperate to find them"},
	mother:       labeled{"Missing Person", "The vanished one"},
	sidekick:     labeled{"Local Guide", "Knows the area"},
	supporting:   labeled{"Last Witness", "Saw something important"},
	crowd:        labeled{"Search Party", "Community helpers"},
}

var treasureHuntSet = roleSet{
	hero:         labeled{"Treasure Hunter", "Seeking the hidden fortune"},
	villain:      labeled{"Rival Hunter", "Competing for the prize"},
	loveInterest: labeled{"Historian", "Decodes the clues"},
	mother:       labeled{"Original Owner's Heir", "Rightful claimant"},
	sidekick:     labeled{"Tech Expert", "Modern tools for old mystery"},
	supporting:   labeled{"Museum Curator", "Knows the artifacts"},
	crowd:        labeled{"Expedition Team", "Support crew"},
}

var familySecretsSet = roleSet{
	hero:         labeled{"Truth Seeker", "Uncovering family lies"},
	villain:      labeled{"Secret Keeper", "Will kill to hide truth"},
	loveInterest: labeled{"Outsider Ally", "Helps without bias"},
	mother:       labeled{"Matriarch", "Holds the biggest secrets"},
	sidekick:     labeled{"Curious Cousin", "Also wants the truth"},
	supporting:   labeled{"Family Lawyer", "Knows the paperwork"},
	crowd:        labeled{"Extended Family", "All have pieces"},
}

// ---- 喜剧 ----

var mistakenIdentitySet = roleSet{
	hero:         labeled{"Wrong Person", "Mistaken for someone else"},
	villain:      labeled{"Real Target", "The actual person being sought"},
	loveInterest: labeled{"Confused Lover", "Attracted to wrong one"},
	mother:       labeled{"Oblivious Mom", "Makes it worse"},
	sidekick:     labeled{"Enabler Friend", "Encourages the deception"},
	supporting:   labeled{"Almost Discoverer", "Keeps almost finding out"},
	crowd:        labeled{"Confused Crowd", "Add to the chaos"},
}

var weddingDisasterSet = roleSet{
	hero:         labeled{"Panicking Bride/Groom", "Nothing going right"},
	villain:      labeled{"Ex-Partner", "Trying to stop wedding"},
	loveInterest: labeled{"Patient Partner", "Trying to stay calm"},
	mother:       labeled{"Overbearing MIL", "Making demands"},
	sidekick:     labeled{"Best Man/Maid", "Damage control"},
	supporting:   labeled{"Wedding Planner", "Having a breakdown"},
	crowd:        labeled{"Wedding Guests", "Witnessing chaos"},
}

var officePranksSet = roleSet{
	hero:         labeled{"Office Prankster", "Takes it too far"},
	villain:      labeled{"Strict Boss", "Target of pranks"},
	loveInterest: labeled{"HR Person", "Attracted to troublemaker"},
	mother:       labeled{"Office Mom", "Tries to keep peace"},
	sidekick:     labeled{"Accomplice", "Partner in crime"},
	supporting:   labeled{"Snitch Coworker", "Almost tells boss"},
	crowd:        labeled{"Office Staff", "Entertained witnesses"},
}

var familyReunionSet = roleSet{
	hero:         labeled{"Peacemaker", "Trying to unite family"},
	villain:      labeled{"Troublemaker Relative", "Stirs up old drama"},
	loveInterest: labeled{"Plus One", "Meeting the chaos family"},
	mother:       labeled{"Dramatic Aunt", "Center of attention seeker"},
	sidekick:     labeled{"Favorite Cousin", "Only sane one"},
	supporting:   labeled{"Eccentric Grandparent", "Says inappropriate things"},
	crowd:        labeled{"Relatives", "Assorted crazy family"},
}

// ---- 家庭 ----

var mothersSacrificeSet = roleSet{
	hero:         labeled{"Sacrificing Mother", "Gives everything for children"},
	villain:      labeled{"Ungrateful Child", "Takes mother for granted"},
	loveInterest: labeled{"Supportive Father", "Sees her struggle"},
	mother:       labeled{"Grandmother", "Wisdom from experience"},
	sidekick:     labeled{"Grateful Child", "Appreciates the sacrifice"},
	supporting:   labeled{"Neighbor", "Witnesses the struggle"},
	crowd:        labeled{"Society", "Judges the family"},
}

var brotherBetrayalSet = roleSet{
	hero:         labeled{"Betrayed Brother", "Seeking reconciliation"},
	villain:      labeled{"Betrayer Brother", "Chose wrong path"},
	loveInterest: labeled{"Wife Caught Between", "Loves both brothers"},
	mother:       labeled{"Torn Mother", "Loves both sons"},
	sidekick:     labeled{"Loyal Friend", "Supports the wronged"},
	supporting:   labeled{"Mediator Uncle", "Tries to unite"},
	crowd:        labeled{"Family Members", "Taking sides"},
}

var fatherReturnsSet = roleSet{
	hero:         labeled{"Returning Father", "Seeking forgiveness"},
	villain:      labeled{"Angry Child", "Can't forgive abandonment"},
	loveInterest: labeled{"Ex-Wife", "Complex feelings"},
	mother:       labeled{"Mother", "Raised kids alone"},
	sidekick:     labeled{"Forgiving Child", "Wants family whole"},
	supporting:   labeled{"Family Friend", "Saw the whole history"},
	crowd:        labeled{"Extended Family", "Mixed opinions"},
}

var jointFamilySet = roleSet{
	hero:         labeled{"Peacekeeper", "Trying to hold family together"},
	villain:      labeled{"Greedy Relative", "Wants property split"},
	loveInterest: labeled{"New Bride", "Learning family dynamics"},
	mother:       labeled{"Matriarch", "Head of the household"},
	sidekick:     labeled{"Youngest Sibling", "Caught in middle"},
	supporting:   labeled{"Patriarch", "Fading authority"},
	crowd:        labeled{"Household", "Servants and relatives"},
}

// ---- 励志 ----

var poorBoyChampionSet = roleSet{
	hero:         labeled{"Underdog", "Rising from poverty to glory"},
	villain:      labeled{"Privileged Rival", "Born with advantages"},
	loveInterest: labeled{"Believer", "Sees potential in hero"},
	mother:       labeled{"Struggling Mother", "Works to support dreams"},
	sidekick:     labeled{"Coach/Mentor", "Trains the champion"},
	supporting:   labeled{"Sponsor", "Provides opportunity"},
	crowd:        labeled{"Fans", "Growing supporters"},
}

var singleMotherSet = roleSet{
	hero:         labeled{"Single Mother", "Fighting for children's future"},
	villain:      labeled{"Corrupt System", "Barriers to success"},
	loveInterest: labeled{"Supportive Partner", "New relationship"},
	mother:       labeled{"Her Mother", "Helps with children"},
	sidekick:     labeled{"Eldest Child", "Mature beyond years"},
	supporting:   labeled{"Kind Employer", "Gives opportunity"},
	crowd:        labeled{"Community", "Mixed support"},
}

var disabledHeroSet = roleSet{
	hero:         labeled{"Differently Abled Hero", "Proving doubters wrong"},
	villain:      labeled{"Doubter", "Says they can't succeed"},
	loveInterest: labeled{"Equal Partner", "Loves without pity"},
	mother:       labeled{"Protective Mother", "Fears and hopes"},
	sidekick:     labeled{"Supportive Friend", "Treats them normally"},
	supporting:   labeled{"Inspiring Role Model", "Succeeded before"},
	crowd:        labeled{"Society", "Learns to accept"},
}

var villageGirlDreamsSet = roleSet{
	hero:         labeled{"Ambitious Girl", "Dreams beyond village"},
	villain:      labeled{"Tradition Enforcer", "Says girls can't dream"},
	loveInterest: labeled{"Progressive Partner", "Supports her dreams"},
	mother:       labeled{"Conflicted Mother", "Between tradition and child"},
	sidekick:     labeled{"Best Friend", "Escapes with her"},
	supporting:   labeled{"City Mentor", "Guides in new world"},
	crowd:        labeled{"Village Elders", "Disapproving council"},
}

// ---- 乡村 ----

var landDisputeSet = roleSet{
	hero:         labeled{"Rightful Owner", "Fighting for ancestral land"},
	villain:      labeled{"Land Grabber", "Powerful and corrupt"},
	loveInterest: labeled{"Enemy's Child", "Love across conflict"},
	mother:       labeled{"Widow", "Defending family land alone"},
	sidekick:     labeled{"Lawyer", "Fighting legally"},
	supporting:   labeled{"Corrupt Official", "Taking bribes"},
	crowd:        labeled{"Villagers", "Affected by dispute"},
}

var clanLoveSet = roleSet{
	hero:         labeled{"Romeo", "Loves across clan lines"},
	villain:      labeled{"Clan Head", "Forbids the union"},
	loveInterest: labeled{"Juliet", "From enemy clan"},
	mother:       labeled{"Sympathetic Mother", "Secretly supports love"},
	sidekick:     labeled{"Messenger", "Carries secret notes"},
	supporting:   labeled{"Village Elder", "Remembers old peace"},
	crowd:        labeled{"Both Clans", "Historical enemies"},
}

var returningSonSet = roleSet{
	hero:         labeled{"City-Returned Son", "Brings modern ideas"},
	villain:      labeled{"Tradition Guard", "Resists all change"},
	loveInterest: labeled{"Progressive Woman", "Supports change"},
	mother:       labeled{"Hopeful Mother", "Wants son to stay"},
	sidekick:     labeled{"Young Supporter", "Embraces new ways"},
	supporting:   labeled{"Wise Elder", "Balance old and new"},
	crowd:        labeled{"Villagers", "Divided on change"},
}

var widowRightsSet = roleSet{
	hero:         labeled{"Fighting Widow", "Demanding her rights"},
	villain:      labeled{"Greedy In-Laws", "Taking her property"},
	loveInterest: labeled{"Supportive Ally", "Stands with her"},
	mother:       labeled{"Her Mother", "Wants daughter home"},
	sidekick:     labeled{"Woman Lawyer", "Takes her case"},
	supporting:   labeled{"NGO Worker", "Spreads awareness"},
	crowd:        labeled{"Other Widows", "United in struggle"},
}

type themeEntry struct {
	key string
	set roleSet
}

// 主题词典。切片保序：部分匹配按声明顺序扫描，先命中者胜。
var themeEntries = []themeEntry{
	// 超自然
	{"magical powers awakened", magicalPowersSet},
	{"demon hunter in modern times", demonHunterSet},
	{"guardian spirit protects family", guardianSpiritSet},
	{"reincarnation and destiny", reincarnationSet},

	// 动作惊悚
	{"one man army against a crime syndicate", oneManArmySet},
	{"escape from a deadly conspiracy", conspiracySet},
	{"race against time to save family", raceAgainstTimeSet},
	{"undercover mission gone wrong", undercoverSet},

	// 恐怖
	{"haunted ancestral home", hauntedHomeSet},
	{"village curse awakens", villageCurseSet},
	{"possessed family member", possessedSet},
	{"supernatural revenge", supernaturalRevengeSet},

	// 言情
	{"a love story with a tragic twist", tragicLoveSet},
	{"childhood sweethearts reunited after years", childhoodSweetheartsSet},
	{"love across social classes", classBarrierSet},
	{"second chance at love", secondChanceSet},

	// 复仇
	{"brother avenges sister's honor", avengeHonorSet},
	{"son returns to destroy corrupt family", returnToDestroySet},
	{"wrongly accused seeks justice", wronglyAccusedSet},
	{"village hero vs corrupt landlord", villageHeroSet},

	// 悬疑
	{"murder in a locked room", lockedRoomSet},
	{"disappearance in the village", disappearanceSet},
	{"hidden treasure hunt", treasureHuntSet},
	{"family secrets unveiled", familySecretsSet},

	// 喜剧
	{"mistaken identity leads to chaos", mistakenIdentitySet},
	{"wedding disasters", weddingDisasterSet},
	{"office pranks gone too far", officePranksSet},
	{"family reunion mayhem", familyReunionSet},

	// 家庭
	{"mother's sacrifice for children", mothersSacrificeSet},
	{"brother's betrayal and redemption", brotherBetrayalSet},
	{"father returns after years", fatherReturnsSet},
	{"joint family conflicts", jointFamilySet},

	// 励志
	{"poor boy becomes champion", poorBoyChampionSet},
	{"single mother's struggle to success", singleMotherSet},
	{"disabled hero proves everyone wrong", disabledHeroSet},
	{"village girl achieves dreams", villageGirlDreamsSet},

	// 乡村
	{"land dispute between families", landDisputeSet},
	{"love across enemy clans", clanLoveSet},
	{"returning son challenges traditions", returningSonSet},
	{"widow fights for rights", widowRightsSet},
}

var themeIndex = func() map[string]roleSet {
	m := make(map[string]roleSet, len(themeEntries))
	for _, e := range themeEntries {
		m[e.key] = e.set
	}
	return m
}()

// 题材兜底
var genreDefaults = map[string]roleSet{
	"supernatural":    magicalPowersSet,
	"action-thriller": oneManArmySet,
	"horror":          hauntedHomeSet,
	"romantic-drama":  tragicLoveSet,
	"revenge-saga":    avengeHonorSet,
	"mystery":         lockedRoomSet,
	"comedy":          mistakenIdentitySet,
	"family-drama":    mothersSacrificeSet,
	"inspirational":   poorBoyChampionSet,
	"village-drama":   landDisputeSet,
}

func resolveSet(theme, genre string) roleSet {
	normalized := strings.ToLower(strings.TrimSpace(theme))

	if normalized != "" {
		if set, ok := themeIndex[normalized]; ok {
			return set
		}

		// 部分匹配：词典键至少有两个词出现在主题里
		for _, entry := range themeEntries {
			matches := 0
			for _, kw := range strings.Fields(entry.key) {
				if strings.Contains(normalized, kw) {
					matches++
				}
			}
			if matches >= 2 {
				return entry.set
			}
		}
	}

	if set, ok := genreDefaults[genre]; ok {
		return set
	}
	return defaultSet
}

// Resolve 按主题和题材返回带标签的角色选项
func Resolve(theme, genre string) []Option {
	return resolveSet(theme, genre).options()
}

// 第三默认角色：主角反派之外按题材补一个
var thirdChoice = map[string]models.Role{
	"romantic-drama":  models.RoleLoveInterest,
	"family-drama":    models.RoleMother,
	"action-thriller": models.RoleSidekick,
	"horror":          models.RoleSupporting,
	"comedy":          models.RoleSidekick,
	"mystery":         models.RoleSupporting,
	"revenge-saga":    models.RoleMother,
	"supernatural":    models.RoleSupporting,
	"inspirational":   models.RoleMother,
	"village-drama":   models.RoleMother,
}

// DefaultSelected 默认勾选的角色：主角 + 反派 + 题材第三选择，去重且仅在选项中存在时加入
func DefaultSelected(theme, genre string) []models.Role {
	options := Resolve(theme, genre)
	available := make(map[models.Role]bool, len(options))
	for _, opt := range options {
		available[opt.Value] = true
	}

	defaults := make([]models.Role, 0, 3)
	if available[models.RoleHero] {
		defaults = append(defaults, models.RoleHero)
	}
	if available[models.RoleVillain] {
		defaults = append(defaults, models.RoleVillain)
	}

	if third, ok := thirdChoice[genre]; ok && available[third] {
		already := false
		for _, r := range defaults {
			if r == third {
				already = true
				break
			}
		}
		if !already {
			defaults = append(defaults, third)
		}
	}

	return defaults
}
